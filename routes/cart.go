package routes

import (
	cartControllers "github.com/MariaSalamatova/BD-course-work/controllers/cart"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/cart/:id", cartControllers.GetCartHandler(db))
}
