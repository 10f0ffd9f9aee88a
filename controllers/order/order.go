package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	delivery "github.com/Ilya88556/ecom-api/gateways/delivery"
	"github.com/Ilya88556/ecom-api/middleware"
	"github.com/Ilya88556/ecom-api/models"
)

var (
	ErrEmptyCart               = errors.New("cart is empty or doesn't exist")
	ErrDeliveryAddressNotFound = errors.New("delivery address not found")
	ErrInvalidStateTransition  = errors.New("cannot cancel a shipped, delivered, returned, failed or canceled order")
)

// CheckoutCart converts the user's active cart into a pending order with a
// shipment. Everything runs in one transaction: a failure at any step, the
// delivery address lookup included, rolls the whole checkout back.
func CheckoutCart(db *gorm.DB, factory *delivery.Factory, userID, deliveryAddressID uint) (*models.Order, error) {
	var orderID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items.Product").
			Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
			First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		order := models.Order{UserID: &userID, Status: models.OrderStatusPending}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID

		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			productID := item.ProductID
			orderItems = append(orderItems, models.OrderItem{
				OrderID:   order.ID,
				ProductID: &productID,
				Quantity:  item.Quantity,
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("status", models.CartStatusOrdered).Error; err != nil {
			return err
		}

		var address models.DeliveryAddress
		err = tx.Where("id = ? AND is_active = ?", deliveryAddressID, true).
			First(&address).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: ID %d", ErrDeliveryAddressNotFound, deliveryAddressID)
		}
		if err != nil {
			return err
		}

		gateway, err := factory.Gateway(address.Carrier)
		if err != nil {
			return err
		}
		if _, err := gateway.CreateShipment(tx, &order, &address); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return loadOrder(db, orderID)
}

// CancelOrder cancels an order unless it already reached a terminal state.
func CancelOrder(db *gorm.DB, order *models.Order) (*models.Order, error) {
	if order.Status.IsTerminal() {
		return nil, ErrInvalidStateTransition
	}

	err := db.Model(order).Update("status", models.OrderStatusCanceled).Error
	if err != nil {
		return nil, err
	}

	return loadOrder(db, order.ID)
}

func loadOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items.Product").
		Preload("Deliveries.DeliveryAddress").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

type createOrderInput struct {
	DeliveryAddressID uint `json:"delivery_address_id" binding:"required"`
}

type cancelOrderInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// POST /orders
func CreateOrderHandler(db *gorm.DB, factory *delivery.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input createOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_address_id is required"})
			return
		}

		order, err := CheckoutCart(db, factory, userID, input.DeliveryAddressID)
		switch {
		case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrDeliveryAddressNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			log.Printf("checkout failed for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		err := db.Preload("Items.Product").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := userOrder(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /orders/:id
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := userOrder(c, db)
		if !ok {
			return
		}

		var input cancelOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		if input.Status != models.OrderStatusCanceled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only cancellation is supported"})
			return
		}

		canceled, err := CancelOrder(db, order)
		switch {
		case errors.Is(err, ErrInvalidStateTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}

		c.JSON(http.StatusOK, canceled)
	}
}

// GET /admin/orders
func ListAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		err := db.Preload("Items.Product").
			Preload("Deliveries.DeliveryAddress").
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// userOrder loads the order in the path, scoped to the authenticated owner.
func userOrder(c *gin.Context, db *gorm.DB) (*models.Order, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return nil, false
	}

	var order models.Order
	err = db.Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return nil, false
	}

	return &order, true
}
