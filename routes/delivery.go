package routes

import (
	deliveryControllers "github.com/MariaSalamatova/BD-course-work/controllers/delivery"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupDeliveryRoutes(api *gin.RouterGroup, db *gorm.DB) {
	delivery := api.Group("/delivery")
	{
		// analytics first so it is not swallowed by the :id route
		delivery.GET("/analytics/methods", deliveryControllers.GetPopularDeliveryHandler(db))
		delivery.GET("/:id", deliveryControllers.GetDeliveryHandler(db))
	}
}
