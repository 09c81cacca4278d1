package paymentControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MariaSalamatova/BD-course-work/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/payment/:id
func GetPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment ID"})
			return
		}

		var payment models.Payment
		if err := db.First(&payment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payment"})
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}
