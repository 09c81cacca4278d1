package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MariaSalamatova/BD-course-work/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID          uint            `json:"user_id"`
	DeliveryMethod  string          `json:"delivery_method"`
	DeliveryAddress string          `json:"delivery_address"`
	PaymentMethod   string          `json:"payment_method"`
	Items           json.RawMessage `json:"items"` // decoded separately, see parseItems
}

type UpdateOrderStatusRequest struct {
	NewStatus     string `json:"newStatus"`
	CurrentStatus string `json:"currentStatus"`
}

// -------- Workflow Errors --------

var (
	ErrUserNotFound    = errors.New("User not found")
	ErrProductNotFound = errors.New("One or more products not found")
	ErrInvalidQuantity = errors.New("Invalid product quantity")

	ErrOrderNotFound  = errors.New("Order not found")
	ErrStatusChanged  = errors.New("Order status has changed. Retry operation.")
	ErrOrderCancelled = errors.New("Cancelled order cannot be updated")
	ErrNotCancelled   = errors.New("Only cancelled orders can be deleted")
)

// parseItems decodes the items payload. Anything that is not a non-empty
// JSON array counts as an empty order.
func parseItems(raw json.RawMessage) ([]OrderItemInput, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var items []OrderItemInput
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil, false
	}
	return items, true
}

// -------- Core Logic --------

// CreateOrderWithItems writes the cart, its items, payment, delivery and the
// order itself in one transaction. Any returned error rolls the whole set back.
func CreateOrderWithItems(db *gorm.DB, userID uint, deliveryMethod, deliveryAddress, paymentMethod string, items []OrderItemInput) (*models.Order, error) {
	var created models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		ids := make([]uint, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}
		var products []models.Product
		if err := tx.Where("product_id IN ?", ids).Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(items) {
			return ErrProductNotFound
		}
		for _, item := range items {
			if item.Quantity <= 0 {
				return ErrInvalidQuantity
			}
		}

		priceByID := make(map[uint]decimal.Decimal, len(products))
		for _, p := range products {
			priceByID[p.ProductID] = p.Price
		}

		cart := models.Cart{UserID: user.UserID}
		if err := tx.Create(&cart).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, item := range items {
			cartItem := models.CartItem{
				CartID:    cart.CartID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&cartItem).Error; err != nil {
				return err
			}
			total = total.Add(priceByID[item.ProductID].Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		payment := models.Payment{
			TransactionDate: time.Now(),
			PaymentMethod:   paymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		delivery := models.Delivery{
			DeliveryMethod:  deliveryMethod,
			DeliveryAddress: deliveryAddress,
			Status:          models.OrderStatusCreated,
		}
		if err := tx.Create(&delivery).Error; err != nil {
			return err
		}

		order := models.Order{
			CartID:       cart.CartID,
			DeliveryID:   delivery.DeliveryID,
			PaymentID:    payment.PaymentID,
			TotalPrice:   total,
			DeliveryDate: time.Now(),
			Status:       models.OrderStatusCreated,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.
			Preload("Cart.Items.Product").
			Preload("Delivery").
			Preload("Payment").
			First(&created, order.OrderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOrderStatus transitions an order only if the stored status still
// matches what the caller saw. The guarded UPDATE is the compare-and-swap:
// a concurrent transition makes RowsAffected come back zero.
func UpdateOrderStatus(db *gorm.DB, orderID uint, newStatus, currentStatus string) (*models.Order, error) {
	var updated models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status != models.OrderStatus(currentStatus) {
			return ErrStatusChanged
		}
		if order.Status == models.OrderStatusCancelled {
			return ErrOrderCancelled
		}

		res := tx.Model(&models.Order{}).
			Where("order_id = ? AND order_status = ?", orderID, currentStatus).
			Update("order_status", models.OrderStatus(newStatus))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}

		return tx.First(&updated, orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCancelledOrder hard-deletes an order. Cart, payment and delivery rows
// stay behind; only the order row goes.
func DeleteCancelledOrder(db *gorm.DB, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status != models.OrderStatusCancelled {
			return ErrNotCancelled
		}
		return tx.Delete(&order).Error
	})
}

// -------- Handlers --------

// POST /api/orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if req.UserID == 0 || req.DeliveryMethod == "" || req.DeliveryAddress == "" || req.PaymentMethod == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		items, ok := parseItems(req.Items)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order must contain items"})
			return
		}

		order, err := CreateOrderWithItems(db, req.UserID, req.DeliveryMethod, req.DeliveryAddress, req.PaymentMethod, items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Order creation failed",
				"error":   err.Error(),
			})
			return
		}

		broadcastOrderEvent("order_created", *order)
		c.JSON(http.StatusCreated, order)
	}
}

// PATCH /api/orders/:orderId/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.NewStatus == "" || req.CurrentStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing status fields"})
			return
		}

		order, err := UpdateOrderStatus(db, uint(orderID), req.NewStatus, req.CurrentStatus)
		if err != nil {
			switch {
			case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrStatusChanged), errors.Is(err, ErrOrderCancelled):
				c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			return
		}

		broadcastOrderEvent("order_status_updated", *order)
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /api/orders/:orderId
func DeleteCancelledOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
			return
		}

		if err := DeleteCancelledOrder(db, uint(orderID)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order permanently deleted (hard delete)"})
	}
}

// GET /api/orders/user/:userId
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}
		offset, limit := pageParams(c.Query("page"), c.Query("limit"))

		orders := []models.Order{}
		if err := db.
			Joins("JOIN carts ON carts.cart_id = orders.cart_id").
			Where("carts.user_id = ?", userID).
			Preload("Delivery").
			Preload("Payment").
			Order("delivery_date DESC").
			Limit(limit).
			Offset(offset).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
