package payment

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ilya88556/ecom-api/models"
)

// DefaultCurrency is applied when a caller does not ask for another one.
const DefaultCurrency = "UAH"

var ErrUnsupportedGateway = errors.New("gateway not supported")

// GatewayError wraps any failure coming out of a gateway so raw provider
// errors never propagate past the orchestrator.
type GatewayError struct {
	Gateway string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s: %v", e.Gateway, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Intent is the payload returned by payment initialization. Signature covers
// the JSON form of the intent without the signature field itself.
type Intent struct {
	OrderID      uint                 `json:"order_id"`
	PaymentToken string               `json:"payment_token"`
	Amount       decimal.Decimal      `json:"amount"`
	Currency     string               `json:"currency"`
	Gateway      string               `json:"gateway"`
	Status       models.PaymentStatus `json:"status"`
	Signature    string               `json:"signature,omitempty"`
}

// StatusReport is what a gateway posts back on its callback: a base64-encoded
// JSON payload plus a signature over that encoded string.
type StatusReport struct {
	Data         string `json:"data"`
	Signature    string `json:"signature"`
	Gateway      string `json:"gateway"`
	PaymentToken string `json:"payment_token"`
}

// CallbackPayload is the decoded form of StatusReport.Data.
type CallbackPayload struct {
	PaymentToken string               `json:"payment_token"`
	Gateway      string               `json:"gateway"`
	Status       models.PaymentStatus `json:"status"`
}

// Gateway abstracts one payment provider. The bundled implementations
// emulate their providers locally; a real backend would do network I/O here,
// so callers must treat both methods as blocking.
type Gateway interface {
	CreatePayment(orderID uint, amount decimal.Decimal, currency string) (*Intent, error)
	CheckPaymentStatus(paymentToken string) (*StatusReport, error)
}

func newToken() string { return uuid.NewString() }

// sign implements the shared provider scheme: SHA-1 over key + data + key.
func sign(secret, data string) string {
	sum := sha1.Sum([]byte(secret + data + secret))
	return hex.EncodeToString(sum[:])
}

func newIntent(gateway, tokenPrefix, secret string, orderID uint, amount decimal.Decimal, currency string) (*Intent, error) {
	if currency == "" {
		currency = DefaultCurrency
	}

	intent := &Intent{
		OrderID:      orderID,
		PaymentToken: tokenPrefix + "-" + newToken(),
		Amount:       amount,
		Currency:     currency,
		Gateway:      gateway,
		Status:       models.PaymentStatusPending,
	}

	payload, err := json.Marshal(intent)
	if err != nil {
		return nil, err
	}
	intent.Signature = sign(secret, string(payload))

	return intent, nil
}

// newStatusReport emulates a provider callback: the settlement outcome is
// random, stand-in for the real provider's decision.
func newStatusReport(gateway, secret, paymentToken string) (*StatusReport, error) {
	status := models.PaymentStatusSuccess
	if rand.Intn(2) == 0 {
		status = models.PaymentStatusFailure
	}

	payload, err := json.Marshal(CallbackPayload{
		PaymentToken: paymentToken,
		Gateway:      gateway,
		Status:       status,
	})
	if err != nil {
		return nil, err
	}

	data := base64.StdEncoding.EncodeToString(payload)

	return &StatusReport{
		Data:         data,
		Signature:    sign(secret, data),
		Gateway:      gateway,
		PaymentToken: paymentToken,
	}, nil
}

// DecodeCallback parses the base64 JSON payload carried by a callback.
func DecodeCallback(data string) (*CallbackPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode callback data: %w", err)
	}
	var payload CallbackPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse callback data: %w", err)
	}
	return &payload, nil
}
