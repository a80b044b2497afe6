package ledger

import (
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summary is the derived state of a credit as of a given day. It is never persisted.
// NextDueDate is the first period boundary after AsOf at which ExpectedPaid
// grows beyond the installments already paid; it is nil once no such boundary
// remains. It uses the same period count as IsOverdue, so it is never in the past.
type Summary struct {
	AsOf               domain.Date     `json:"asOf"`
	TotalPaid          decimal.Decimal `json:"totalPaid"`
	PaidInstallments   int             `json:"paidInstallments"`
	Balance            decimal.Decimal `json:"balance"`
	PeriodsElapsed     int             `json:"periodsElapsed"`
	ExpectedPaid       decimal.Decimal `json:"expectedPaid"`
	AmountBehind       decimal.Decimal `json:"amountBehind"`
	InstallmentsBehind int             `json:"installmentsBehind"`
	IsOverdue          bool            `json:"isOverdue"`
	NextDueDate        *domain.Date    `json:"nextDueDate,omitempty"`
}

// Installment is one row of a credit's schedule.
type Installment struct {
	Number        int             `json:"number"`
	DueDate       domain.Date     `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	CumulativeDue decimal.Decimal `json:"cumulativeDue"`
}

// TotalPaid sums the amounts of all non-voided payments.
func TotalPaid(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Voided {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total
}

// PaidInstallments is floor(totalPaid / installmentValue) capped at the installment count.
func PaidInstallments(c domain.Credit, totalPaid decimal.Decimal) int {
	if !c.InstallmentValue.IsPositive() || !totalPaid.IsPositive() {
		return 0
	}
	q, _ := totalPaid.QuoRem(c.InstallmentValue, 0)
	n := int(q.IntPart())
	if n > c.TotalInstallments {
		return c.TotalInstallments
	}
	return n
}

// PeriodsElapsed counts whole installment periods from the first payment date to today.
func PeriodsElapsed(c domain.Credit, today domain.Date) int {
	return c.Frequency.PeriodsBetween(c.FirstPaymentDate, today)
}

// ExpectedPaid is periods × installmentValue, capped at the total to pay.
func ExpectedPaid(c domain.Credit, periods int) decimal.Decimal {
	expected := c.InstallmentValue.Mul(decimal.NewFromInt(int64(periods)))
	if expected.GreaterThan(c.TotalToPay) {
		return c.TotalToPay
	}
	return expected
}

// Recompute rebuilds the running totals of c from its full payment history.
// An Active credit whose total is covered becomes Paid; Paid and Lost are kept.
func Recompute(c domain.Credit, payments []domain.Payment) domain.Credit {
	total := TotalPaid(payments)
	c.TotalPaid = total
	c.PaidInstallments = PaidInstallments(c, total)
	if c.Status == domain.CreditActive && total.GreaterThanOrEqual(c.TotalToPay) {
		c.Status = domain.CreditPaid
	}
	return c
}

// Summarize derives balance and overdue state for c as of today from its history.
func Summarize(c domain.Credit, payments []domain.Payment, today domain.Date) Summary {
	c = Recompute(c, payments)
	periods := PeriodsElapsed(c, today)
	expected := ExpectedPaid(c, periods)

	s := Summary{
		AsOf:             today,
		TotalPaid:        c.TotalPaid,
		PaidInstallments: c.PaidInstallments,
		Balance:          c.Balance(),
		PeriodsElapsed:   periods,
		ExpectedPaid:     expected,
		AmountBehind:     decimal.Zero,
	}
	if c.Status != domain.CreditActive {
		return s
	}

	if expected.GreaterThan(c.TotalPaid) {
		s.IsOverdue = true
		s.AmountBehind = expected.Sub(c.TotalPaid)
		due := periods
		if due > c.TotalInstallments {
			due = c.TotalInstallments
		}
		if behind := due - c.PaidInstallments; behind > 0 {
			s.InstallmentsBehind = behind
		}
	}
	// Installment k counts as expected once k whole periods have elapsed, so the
	// next boundary is past both what is covered and what is already expected.
	if k := max(c.PaidInstallments, periods) + 1; k <= c.TotalInstallments {
		next := c.Frequency.DueDate(c.FirstPaymentDate, k)
		s.NextDueDate = &next
	}
	return s
}

// Schedule lists the installments of c. The last installment carries the remainder
// when the fixed installments overshoot the total to pay.
func Schedule(c domain.Credit) []Installment {
	out := make([]Installment, 0, c.TotalInstallments)
	cumulative := decimal.Zero
	for i := 0; i < c.TotalInstallments; i++ {
		remaining := c.TotalToPay.Sub(cumulative)
		if !remaining.IsPositive() {
			break
		}
		amount := decimal.Min(c.InstallmentValue, remaining)
		cumulative = cumulative.Add(amount)
		out = append(out, Installment{
			Number:        i + 1,
			DueDate:       c.Frequency.DueDate(c.FirstPaymentDate, i),
			Amount:        amount,
			CumulativeDue: cumulative,
		})
	}
	return out
}
