package routes

import (
	orderControllers "github.com/MariaSalamatova/BD-course-work/controllers/order"
	productController "github.com/MariaSalamatova/BD-course-work/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		// Create a new order with its items (atomic)
		orders.POST("", orderControllers.CreateOrderHandler(db))

		// Optimistic-lock status transition
		orders.PATCH("/:orderId/status", orderControllers.UpdateOrderStatusHandler(db))

		// Hard delete, cancelled orders only
		orders.DELETE("/:orderId", orderControllers.DeleteCancelledOrderHandler(db))

		// Paginated order history for a user
		orders.GET("/user/:userId", orderControllers.GetUserOrdersHandler(db))

		// Category catalogue, cheapest first
		orders.GET("/products/category/:categoryId", productController.GetProductsByCategory(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderFeedHandler)
	}
}
