package ledger_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstPayment = domain.NewDate(2024, time.March, 4)

func weeklyTerms() ledger.CreditTerms {
	return ledger.CreditTerms{
		ClientID:          "client-1",
		Capital:           decimal.NewFromInt(1000),
		TotalToPay:        decimal.NewFromInt(1200),
		InstallmentValue:  decimal.NewFromInt(100),
		TotalInstallments: 12,
		Frequency:         domain.Weekly,
		StartDate:         firstPayment.AddDays(-7),
		FirstPaymentDate:  firstPayment,
	}
}

func newWeeklyCredit(t *testing.T) domain.Credit {
	t.Helper()
	c, err := ledger.NewCredit("credit-1", weeklyTerms())
	require.NoError(t, err)
	return c
}

func pay(t *testing.T, c domain.Credit, history []domain.Payment, amount int64, on domain.Date) (domain.Credit, []domain.Payment) {
	t.Helper()
	next, p, err := ledger.ApplyPayment(c, history, ledger.PaymentInput{
		PaymentID: fmt.Sprintf("p-%d", len(history)+1),
		Amount:    decimal.NewFromInt(amount),
		Date:      on,
	})
	require.NoError(t, err)
	return next, append(history, p)
}

func TestNewCredit_RejectsInvalidTerms(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ledger.CreditTerms)
		errMsg string
	}{
		{"zero installment", func(t *ledger.CreditTerms) { t.InstallmentValue = decimal.Zero }, "installment value must be positive"},
		{"negative installment", func(t *ledger.CreditTerms) { t.InstallmentValue = decimal.NewFromInt(-5) }, "installment value must be positive"},
		{"total below capital", func(t *ledger.CreditTerms) { t.TotalToPay = decimal.NewFromInt(900) }, "less than capital"},
		{"no installments", func(t *ledger.CreditTerms) { t.TotalInstallments = 0 }, "installment count must be positive"},
		{"bad frequency", func(t *ledger.CreditTerms) { t.Frequency = "YEARLY" }, "unknown frequency"},
		{"first payment before start", func(t *ledger.CreditTerms) { t.FirstPaymentDate = t.StartDate.AddDays(-1) }, "before start date"},
		{"installments do not cover total", func(t *ledger.CreditTerms) { t.TotalInstallments = 11 }, "do not cover"},
		{"sub-cent installment", func(t *ledger.CreditTerms) { t.InstallmentValue = decimal.RequireFromString("100.004") }, "at most 2 decimals"},
		{"sub-cent capital", func(t *ledger.CreditTerms) { t.Capital = decimal.RequireFromString("999.995") }, "at most 2 decimals"},
		{"sub-cent total", func(t *ledger.CreditTerms) { t.TotalToPay = decimal.RequireFromString("1200.001") }, "at most 2 decimals"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := weeklyTerms()
			tt.mutate(&terms)
			_, err := ledger.NewCredit("credit-1", terms)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewCredit_StartsActiveAndEmpty(t *testing.T) {
	c := newWeeklyCredit(t)
	assert.Equal(t, domain.CreditActive, c.Status)
	assert.True(t, c.TotalPaid.IsZero())
	assert.Equal(t, 0, c.PaidInstallments)
	assert.True(t, c.Balance().Equal(decimal.NewFromInt(1200)))
}

// Three payments of 100 on a 12 × 100 weekly credit, five weeks in.
func TestSummarize_WeeklyCreditBehindSchedule(t *testing.T) {
	c := newWeeklyCredit(t)
	var history []domain.Payment
	for i := 0; i < 3; i++ {
		c, history = pay(t, c, history, 100, firstPayment.AddDays(7*i))
	}

	assert.Equal(t, 3, c.PaidInstallments)
	assert.True(t, c.Balance().Equal(decimal.NewFromInt(900)))

	today := firstPayment.AddDays(35)
	s := ledger.Summarize(c, history, today)
	assert.Equal(t, 5, s.PeriodsElapsed)
	assert.True(t, s.ExpectedPaid.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.IsOverdue)
	assert.Equal(t, 2, s.InstallmentsBehind)
	assert.True(t, s.AmountBehind.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, s.NextDueDate)
	assert.Equal(t, firstPayment.AddDays(42), *s.NextDueDate)
}

func TestSummarize_NextDueDateFollowsOverdueCount(t *testing.T) {
	c := newWeeklyCredit(t)

	// Six days after the first payment date nothing is expected yet.
	s := ledger.Summarize(c, nil, firstPayment.AddDays(6))
	assert.Equal(t, 0, s.PeriodsElapsed)
	assert.False(t, s.IsOverdue)
	require.NotNil(t, s.NextDueDate)
	assert.Equal(t, firstPayment.AddDays(7), *s.NextDueDate)
	assert.False(t, s.NextDueDate.Before(s.AsOf))

	// One day later the first installment is expected and the boundary moves on.
	s = ledger.Summarize(c, nil, firstPayment.AddDays(7))
	assert.True(t, s.IsOverdue)
	require.NotNil(t, s.NextDueDate)
	assert.Equal(t, firstPayment.AddDays(14), *s.NextDueDate)

	// Paying ahead pushes the boundary past the covered installments.
	c, history := pay(t, c, nil, 300, firstPayment)
	s = ledger.Summarize(c, history, firstPayment.AddDays(8))
	assert.False(t, s.IsOverdue)
	require.NotNil(t, s.NextDueDate)
	assert.Equal(t, firstPayment.AddDays(28), *s.NextDueDate)

	// No boundary remains once every installment is expected.
	s = ledger.Summarize(c, history, firstPayment.AddDays(7*12))
	assert.True(t, s.IsOverdue)
	assert.Nil(t, s.NextDueDate)
}

func TestSummarize_NotOverdueWhenOnSchedule(t *testing.T) {
	c := newWeeklyCredit(t)
	var history []domain.Payment
	for i := 0; i < 5; i++ {
		c, history = pay(t, c, history, 100, firstPayment.AddDays(7*i))
	}
	s := ledger.Summarize(c, history, firstPayment.AddDays(35))
	assert.False(t, s.IsOverdue)
	assert.True(t, s.AmountBehind.IsZero())
}

func TestSummarize_BeforeFirstPaymentNothingExpected(t *testing.T) {
	c := newWeeklyCredit(t)
	s := ledger.Summarize(c, nil, firstPayment.AddDays(-3))
	assert.Equal(t, 0, s.PeriodsElapsed)
	assert.True(t, s.ExpectedPaid.IsZero())
	assert.False(t, s.IsOverdue)
}

func TestSummarize_ExpectedCappedAtTotal(t *testing.T) {
	c := newWeeklyCredit(t)
	s := ledger.Summarize(c, nil, firstPayment.AddDays(7*40))
	assert.True(t, s.ExpectedPaid.Equal(c.TotalToPay))
	assert.Equal(t, 12, s.InstallmentsBehind)
	assert.True(t, s.IsOverdue)
}

func TestSummarize_LostCreditIsNeverOverdue(t *testing.T) {
	c := newWeeklyCredit(t)
	lost, err := ledger.MarkLost(c)
	require.NoError(t, err)
	s := ledger.Summarize(lost, nil, firstPayment.AddDays(70))
	assert.False(t, s.IsOverdue)
	assert.Nil(t, s.NextDueDate)
}

func TestSummarize_MonthlyUsesCalendarMonths(t *testing.T) {
	terms := weeklyTerms()
	terms.Frequency = domain.Monthly
	terms.FirstPaymentDate = domain.NewDate(2024, time.January, 31)
	terms.StartDate = domain.NewDate(2024, time.January, 1)
	c, err := ledger.NewCredit("credit-m", terms)
	require.NoError(t, err)

	c, history := pay(t, c, nil, 100, terms.FirstPaymentDate)

	s := ledger.Summarize(c, history, domain.NewDate(2024, time.February, 28))
	assert.Equal(t, 0, s.PeriodsElapsed)
	assert.False(t, s.IsOverdue)

	s = ledger.Summarize(c, history, domain.NewDate(2024, time.March, 31))
	assert.Equal(t, 2, s.PeriodsElapsed)
	assert.True(t, s.IsOverdue)
}

func TestApplyPayment_Validation(t *testing.T) {
	c := newWeeklyCredit(t)

	_, _, err := ledger.ApplyPayment(c, nil, ledger.PaymentInput{PaymentID: "p", Amount: decimal.Zero, Date: firstPayment})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = ledger.ApplyPayment(c, nil, ledger.PaymentInput{PaymentID: "p", Amount: decimal.NewFromInt(-1), Date: firstPayment})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = ledger.ApplyPayment(c, nil, ledger.PaymentInput{PaymentID: "p", Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = ledger.ApplyPayment(c, nil, ledger.PaymentInput{Amount: decimal.NewFromInt(10), Date: firstPayment})
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)

	_, _, err = ledger.ApplyPayment(c, nil, ledger.PaymentInput{PaymentID: "p", Amount: decimal.RequireFromString("0.001"), Date: firstPayment})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApplyPayment_AcceptsCentAmounts(t *testing.T) {
	c := newWeeklyCredit(t)
	// Trailing zeros do not count as extra precision.
	next, p, err := ledger.ApplyPayment(c, nil, ledger.PaymentInput{PaymentID: "p", Amount: decimal.RequireFromString("100.500"), Date: firstPayment})
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("100.5")))
	assert.True(t, next.TotalPaid.Equal(decimal.RequireFromString("100.5")))
}

func TestApplyPayment_PaysOffAndRejectsFurtherPayments(t *testing.T) {
	c := newWeeklyCredit(t)
	c, history := pay(t, c, nil, 700, firstPayment)
	assert.Equal(t, domain.CreditActive, c.Status)
	c, history = pay(t, c, history, 500, firstPayment.AddDays(7))

	assert.Equal(t, domain.CreditPaid, c.Status)
	assert.Equal(t, 12, c.PaidInstallments)
	assert.True(t, c.Balance().IsZero())

	_, _, err := ledger.ApplyPayment(c, history, ledger.PaymentInput{PaymentID: "late", Amount: decimal.NewFromInt(1), Date: firstPayment})
	assert.ErrorIs(t, err, apperrors.ErrTerminalState)
}

func TestApplyPayment_LostCreditRejects(t *testing.T) {
	c, err := ledger.MarkLost(newWeeklyCredit(t))
	require.NoError(t, err)

	before := c
	_, _, err = ledger.ApplyPayment(c, nil, ledger.PaymentInput{PaymentID: "p", Amount: decimal.NewFromInt(100), Date: firstPayment})
	assert.ErrorIs(t, err, apperrors.ErrTerminalState)
	assert.Equal(t, before, c)

	_, err = ledger.MarkLost(c)
	assert.ErrorIs(t, err, apperrors.ErrTerminalState)
}

func TestApplyPayment_PaidInstallmentsNeverDecrease(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := newWeeklyCredit(t)
	var history []domain.Payment
	prev := 0
	for c.Status == domain.CreditActive {
		amount := int64(rng.Intn(150) + 1)
		c, history = pay(t, c, history, amount, firstPayment.AddDays(len(history)))
		assert.GreaterOrEqual(t, c.PaidInstallments, prev)
		assert.LessOrEqual(t, c.PaidInstallments, c.TotalInstallments)
		assert.True(t, c.TotalPaid.Equal(ledger.TotalPaid(history)), "total paid must equal the recomputed sum")
		prev = c.PaidInstallments
	}
	assert.True(t, c.TotalPaid.GreaterThanOrEqual(c.TotalToPay))
}

func TestCorrectPayment_RecomputesWholesale(t *testing.T) {
	c := newWeeklyCredit(t)
	c, history := pay(t, c, nil, 100, firstPayment)
	c, history = pay(t, c, history, 100, firstPayment.AddDays(7))
	c, history = pay(t, c, history, 100, firstPayment.AddDays(14))

	corrected, p, err := ledger.CorrectPayment(c, history, "p-2", decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(50)))
	assert.True(t, corrected.TotalPaid.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, corrected.PaidInstallments)
	// the input history is left untouched
	assert.True(t, history[1].Amount.Equal(decimal.NewFromInt(100)))

	_, _, err = ledger.CorrectPayment(c, history, "missing", decimal.NewFromInt(50))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, _, err = ledger.CorrectPayment(c, history, "p-1", decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = ledger.CorrectPayment(c, history, "p-1", decimal.RequireFromString("99.999"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCorrectPayment_CannotReopenPaidCredit(t *testing.T) {
	c := newWeeklyCredit(t)
	c, history := pay(t, c, nil, 1200, firstPayment)
	require.Equal(t, domain.CreditPaid, c.Status)

	_, _, err := ledger.CorrectPayment(c, history, "p-1", decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, apperrors.ErrTerminalState)

	// an upward correction keeps the credit paid
	next, _, err := ledger.CorrectPayment(c, history, "p-1", decimal.NewFromInt(1300))
	require.NoError(t, err)
	assert.Equal(t, domain.CreditPaid, next.Status)
}

func TestVoidPayment_ExcludesFromTotals(t *testing.T) {
	c := newWeeklyCredit(t)
	c, history := pay(t, c, nil, 100, firstPayment)
	c, history = pay(t, c, history, 200, firstPayment.AddDays(7))

	next, voided, err := ledger.VoidPayment(c, history, "p-2")
	require.NoError(t, err)
	assert.True(t, voided.Voided)
	assert.True(t, next.TotalPaid.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, next.PaidInstallments)

	history[1] = voided
	_, _, err = ledger.VoidPayment(next, history, "p-2")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, _, err = ledger.CorrectPayment(next, history, "p-2", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSchedule(t *testing.T) {
	terms := weeklyTerms()
	terms.TotalToPay = decimal.NewFromInt(1150)
	c, err := ledger.NewCredit("credit-s", terms)
	require.NoError(t, err)

	rows := ledger.Schedule(c)
	require.Len(t, rows, 12)
	assert.Equal(t, firstPayment, rows[0].DueDate)
	assert.Equal(t, firstPayment.AddDays(77), rows[11].DueDate)
	assert.True(t, rows[11].Amount.Equal(decimal.NewFromInt(50)))
	assert.True(t, rows[11].CumulativeDue.Equal(decimal.NewFromInt(1150)))
}
