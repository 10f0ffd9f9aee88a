package payment

import "github.com/shopspring/decimal"

// Fondy emulates the Fondy payment provider.
type Fondy struct {
	secret string
}

func NewFondy(secret string) *Fondy {
	return &Fondy{secret: secret}
}

func (g *Fondy) CreatePayment(orderID uint, amount decimal.Decimal, currency string) (*Intent, error) {
	return newIntent("fondy", "FD", g.secret, orderID, amount, currency)
}

func (g *Fondy) CheckPaymentStatus(paymentToken string) (*StatusReport, error) {
	return newStatusReport("fondy", g.secret, paymentToken)
}
