package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Frequency is how often an installment falls due.
type Frequency string

const (
	Daily    Frequency = "DAILY"
	Weekly   Frequency = "WEEKLY"
	Biweekly Frequency = "BIWEEKLY"
	Monthly  Frequency = "MONTHLY"
)

// IsValid reports whether f is one of the supported frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case Daily, Weekly, Biweekly, Monthly:
		return true
	}
	return false
}

// DueDate returns the date of the n-th period boundary after start (n=0 is start).
func (f Frequency) DueDate(start Date, n int) Date {
	switch f {
	case Daily:
		return start.AddDays(n)
	case Weekly:
		return start.AddDays(7 * n)
	case Biweekly:
		return start.AddDays(14 * n)
	case Monthly:
		return start.AddMonths(n)
	}
	panic(fmt.Sprintf("domain: unknown frequency %q", string(f)))
}

// PeriodsBetween counts whole periods elapsed from start to end, 0 when end is before start.
func (f Frequency) PeriodsBetween(start, end Date) int {
	if end.Before(start) {
		return 0
	}
	days := start.DaysUntil(end)
	switch f {
	case Daily:
		return days
	case Weekly:
		return days / 7
	case Biweekly:
		return days / 14
	case Monthly:
		return start.MonthsUntil(end)
	}
	panic(fmt.Sprintf("domain: unknown frequency %q", string(f)))
}

// CreditStatus is the lifecycle state of a credit.
type CreditStatus string

const (
	CreditActive CreditStatus = "ACTIVE"
	CreditPaid   CreditStatus = "PAID"
	CreditLost   CreditStatus = "LOST"
)

// Credit is one loan issued to a client. TotalPaid and PaidInstallments are
// running totals recomputed from the full payment history on every change.
type Credit struct {
	CreditID          string          `json:"creditID"`
	ClientID          string          `json:"clientID"`
	Capital           decimal.Decimal `json:"capital"`
	TotalToPay        decimal.Decimal `json:"totalToPay"`
	InstallmentValue  decimal.Decimal `json:"installmentValue"`
	TotalInstallments int             `json:"totalInstallments"`
	Frequency         Frequency       `json:"frequency"`
	StartDate         Date            `json:"startDate"`
	FirstPaymentDate  Date            `json:"firstPaymentDate"`
	Status            CreditStatus    `json:"status"`
	PaidInstallments  int             `json:"paidInstallments"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	AuditFields
}

// Balance is what remains to be paid. It is negative when the client overpaid.
func (c Credit) Balance() decimal.Decimal {
	return c.TotalToPay.Sub(c.TotalPaid)
}

// IsTerminal reports whether the credit no longer accepts payments.
func (c Credit) IsTerminal() bool {
	return c.Status == CreditPaid || c.Status == CreditLost
}
