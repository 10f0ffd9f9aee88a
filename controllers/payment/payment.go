package paymentControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	orderControllers "github.com/Ilya88556/ecom-api/controllers/order"
	payment "github.com/Ilya88556/ecom-api/gateways/payment"
	"github.com/Ilya88556/ecom-api/middleware"
	"github.com/Ilya88556/ecom-api/models"
)

var ErrPaymentNotFound = errors.New("Payment not found")

// CheckResult is what the callback path reports back to the gateway.
type CheckResult struct {
	Status  models.PaymentStatus `json:"status"`
	Message string               `json:"message,omitempty"`
}

func (r *CheckResult) AlreadyProcessed() bool {
	return r.Message == "already processed"
}

// ProcessPayment initiates a payment for an order through the named gateway
// and persists the pending payment attempt. Gateway failures never escape
// raw; they come back wrapped in a GatewayError.
func ProcessPayment(db *gorm.DB, factory *payment.Factory, orderID uint, amount decimal.Decimal, gatewayName string) (*payment.Intent, error) {
	gateway, err := factory.Gateway(gatewayName)
	if err != nil {
		return nil, err
	}

	intent, err := gateway.CreatePayment(orderID, amount, payment.DefaultCurrency)
	if err != nil {
		log.Printf("gateway error: %v", err)
		return nil, &payment.GatewayError{Gateway: gatewayName, Err: err}
	}

	record := models.Payment{
		OrderID:      orderID,
		Gateway:      strings.ToLower(gatewayName),
		Amount:       amount,
		Currency:     intent.Currency,
		PaymentToken: intent.PaymentToken,
		Status:       intent.Status,
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}

	return intent, nil
}

// CheckPayment resolves a payment's final status from its gateway and applies
// it exactly once. The payment row is read under a row lock so concurrent
// callbacks for the same token serialize; whoever loses the race observes a
// non-pending status and short-circuits without writing anything.
func CheckPayment(db *gorm.DB, factory *payment.Factory, paymentToken, gatewayName string) (*CheckResult, error) {
	gateway, err := factory.Gateway(gatewayName)
	if err != nil {
		return nil, err
	}

	report, err := gateway.CheckPaymentStatus(paymentToken)
	if err != nil {
		log.Printf("payment gateway error: %v", err)
		return nil, &payment.GatewayError{Gateway: gatewayName, Err: err}
	}

	var result *CheckResult
	err = db.Transaction(func(tx *gorm.DB) error {
		var record models.Payment
		err := lockForUpdate(tx).Where("payment_token = ?", paymentToken).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		if err != nil {
			return err
		}

		if record.Status != models.PaymentStatusPending {
			log.Printf("payment %s already processed", paymentToken)
			result = &CheckResult{Status: record.Status, Message: "already processed"}
			return nil
		}

		payload, err := payment.DecodeCallback(report.Data)
		if err != nil {
			return err
		}

		if err := tx.Model(&record).Update("status", payload.Status).Error; err != nil {
			return err
		}

		orderStatus := models.OrderStatusFailed
		if payload.Status == models.PaymentStatusSuccess {
			orderStatus = models.OrderStatusPaid
		}
		// only a pending order settles; a late callback must not rewrite a
		// status the order reached in the meantime
		if err := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", record.OrderID, models.OrderStatusPending).
			Update("status", orderStatus).Error; err != nil {
			return err
		}

		log.Printf("payment status updated: %s - order %d", payload.Status, record.OrderID)
		result = &CheckResult{Status: payload.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// lockForUpdate takes a row-level exclusive lock. The sqlite driver used in
// tests has no FOR UPDATE; its transactions serialize on the whole file.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// -------- Handlers --------

type processInput struct {
	Gateway string `json:"gateway" binding:"required"`
}

type callbackInput struct {
	Gateway   string `json:"gateway" binding:"required"`
	Data      string `json:"data" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// POST /payments/:order_id/process
func ProcessHandler(db *gorm.DB, factory *payment.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var input processInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gateway not supported"})
			return
		}

		// only pending orders accept payment attempts; anything settled,
		// shipped or canceled is invisible here
		var order models.Order
		err = db.Preload("Items.Product").
			Where("status = ?", models.OrderStatusPending).
			First(&order, orderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order.UserID == nil || *order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the order owner"})
			return
		}

		total := order.TotalPrice()
		if total.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order total price must be greater than zero"})
			return
		}

		intent, err := ProcessPayment(db, factory, order.ID, total, input.Gateway)
		var gatewayErr *payment.GatewayError
		switch {
		case errors.Is(err, payment.ErrUnsupportedGateway):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gateway not supported"})
			return
		case errors.As(err, &gatewayErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway failure"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment"})
			return
		}

		log.Printf("payment created: %s, order %d", intent.PaymentToken, order.ID)
		c.JSON(http.StatusCreated, intent)
	}
}

// POST /payments/callback — unauthenticated gateway-to-server endpoint.
func CallbackHandler(db *gorm.DB, factory *payment.Factory, verifier *payment.SignatureVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input callbackInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, err := factory.Gateway(input.Gateway); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gateway not supported"})
			return
		}

		if !verifier.Verify(input.Gateway, input.Data, input.Signature) {
			log.Printf("invalid signature for gateway %s", input.Gateway)
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid signature"})
			return
		}

		payload, err := payment.DecodeCallback(input.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback data"})
			return
		}
		if payload.PaymentToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment token in decoded data"})
			return
		}

		result, err := CheckPayment(db, factory, payload.PaymentToken, input.Gateway)
		var gatewayErr *payment.GatewayError
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment not found"})
			return
		case errors.As(err, &gatewayErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway failure"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check payment"})
			return
		}

		if result.AlreadyProcessed() {
			c.JSON(http.StatusOK, result)
			return
		}

		notifyOrderUpdate(db, payload.PaymentToken)
		c.JSON(http.StatusAccepted, result)
	}
}

func notifyOrderUpdate(db *gorm.DB, paymentToken string) {
	var record models.Payment
	if err := db.Where("payment_token = ?", paymentToken).First(&record).Error; err != nil {
		return
	}
	var order models.Order
	if err := db.Preload("Items.Product").First(&order, record.OrderID).Error; err != nil {
		return
	}
	orderControllers.BroadcastOrderStatus(&order)
}
