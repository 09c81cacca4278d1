package deliveryControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MariaSalamatova/BD-course-work/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DeliveryMethodStat struct {
	DeliveryMethod string  `json:"delivery_method"`
	TotalOrders    int64   `json:"total_orders"`
	Percentage     float64 `json:"percentage"`
	PopularityRank int64   `json:"popularity_rank"`
}

// GET /api/delivery/:id
func GetDeliveryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid delivery ID"})
			return
		}

		var delivery models.Delivery
		if err := db.First(&delivery, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Delivery not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch delivery"})
			return
		}
		c.JSON(http.StatusOK, delivery)
	}
}

// GET /api/delivery/analytics/methods
// Ranks delivery methods by how many orders used them, with each method's
// share of all orders. Window functions have no query-builder equivalent,
// so this one stays raw SQL.
func GetPopularDeliveryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := []DeliveryMethodStat{}
		if err := db.Raw(`
			SELECT d.delivery_method,
			       COUNT(o.order_id) AS total_orders,
			       ROUND(COUNT(o.order_id) * 100.0 / (SELECT COUNT(*) FROM orders), 2) AS percentage,
			       RANK() OVER (ORDER BY COUNT(o.order_id) DESC) AS popularity_rank
			FROM deliveries d
			JOIN orders o ON o.delivery_id = d.delivery_id
			GROUP BY d.delivery_method
			ORDER BY total_orders DESC, d.delivery_method
		`).Scan(&stats).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch delivery statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
