package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit is the credits table row.
type Credit struct {
	CreditID          string          `db:"credit_id"`
	ClientID          string          `db:"client_id"`
	Capital           decimal.Decimal `db:"capital"`
	TotalToPay        decimal.Decimal `db:"total_to_pay"`
	InstallmentValue  decimal.Decimal `db:"installment_value"`
	TotalInstallments int             `db:"total_installments"`
	Frequency         string          `db:"frequency"`
	StartDate         time.Time       `db:"start_date"`
	FirstPaymentDate  time.Time       `db:"first_payment_date"`
	Status            string          `db:"status"`
	PaidInstallments  int             `db:"paid_installments"`
	TotalPaid         decimal.Decimal `db:"total_paid"`
	AuditFields
}
