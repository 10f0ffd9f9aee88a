package payment

import "github.com/shopspring/decimal"

// Liqpay emulates the LiqPay payment provider.
type Liqpay struct {
	secret string
}

func NewLiqpay(secret string) *Liqpay {
	return &Liqpay{secret: secret}
}

func (g *Liqpay) CreatePayment(orderID uint, amount decimal.Decimal, currency string) (*Intent, error) {
	return newIntent("liqpay", "LP", g.secret, orderID, amount, currency)
}

func (g *Liqpay) CheckPaymentStatus(paymentToken string) (*StatusReport, error) {
	return newStatusReport("liqpay", g.secret, paymentToken)
}
