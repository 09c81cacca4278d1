package routes

import (
	paymentControllers "github.com/MariaSalamatova/BD-course-work/controllers/payment"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/payment/:id", paymentControllers.GetPaymentHandler(db))
}
