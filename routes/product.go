package routes

import (
	productController "github.com/MariaSalamatova/BD-course-work/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/products/export", productController.ExportProductsToExcel(db))
}
