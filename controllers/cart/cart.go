package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MariaSalamatova/BD-course-work/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/cart/:id
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart ID"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items.Product").First(&cart, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
