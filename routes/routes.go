package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// liveness probe
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	SetupOrderRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupDeliveryRoutes(api, db)
	SetupPaymentRoutes(api, db)
	SetupProductRoutes(api, db)
}
