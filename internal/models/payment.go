package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the payments table row.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	CreditID    string          `db:"credit_id"`
	PaymentDate time.Time       `db:"payment_date"`
	Amount      decimal.Decimal `db:"amount"`
	Note        string          `db:"note"`
	Voided      bool            `db:"voided"`
	AuditFields
}
