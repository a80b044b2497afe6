package domain

import "github.com/shopspring/decimal"

// Payment is a single collection against a credit.
type Payment struct {
	PaymentID string          `json:"paymentID"`
	CreditID  string          `json:"creditID"`
	Date      Date            `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	Voided    bool            `json:"voided"`
	AuditFields
}
