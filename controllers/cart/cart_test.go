package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MariaSalamatova/BD-course-work/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}))
	return db
}

func TestGetCartHandler(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Maria", Email: "maria@example.com"}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{ProductName: "Pen", Info: "The best pen in the world", Price: decimal.RequireFromString("100.99")}
	require.NoError(t, db.Create(&product).Error)
	cart := models.Cart{
		UserID: user.UserID,
		Items:  []models.CartItem{{ProductID: product.ProductID, Quantity: 2}},
	}
	require.NoError(t, db.Create(&cart).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/cart/:id", GetCartHandler(db))

	t.Run("200 with items and product detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart/1", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, cart.CartID, got.CartID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 2, got.Items[0].Quantity)
		assert.Equal(t, "Pen", got.Items[0].Product.ProductName)
	})

	t.Run("404 when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart/999", nil))
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message": "Cart not found"}`, w.Body.String())
	})
}
