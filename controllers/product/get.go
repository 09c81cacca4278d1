package productController

import (
	"net/http"
	"strconv"

	"github.com/MariaSalamatova/BD-course-work/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductsByCategory returns a category's products, cheapest first.
// URL param: /orders/products/category/:categoryId
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.Atoi(c.Param("categoryId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
			return
		}

		products := []models.Product{}
		if err := db.
			Joins("JOIN product_category_connections pcc ON pcc.product_id = products.product_id").
			Where("pcc.category_id = ?", categoryID).
			Order("price ASC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
