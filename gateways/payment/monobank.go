package payment

import "github.com/shopspring/decimal"

// Monobank emulates the Monobank payment provider.
type Monobank struct {
	secret string
}

func NewMonobank(secret string) *Monobank {
	return &Monobank{secret: secret}
}

func (g *Monobank) CreatePayment(orderID uint, amount decimal.Decimal, currency string) (*Intent, error) {
	return newIntent("monobank", "MB", g.secret, orderID, amount, currency)
}

func (g *Monobank) CheckPaymentStatus(paymentToken string) (*StatusReport, error) {
	return newStatusReport("monobank", g.secret, paymentToken)
}
