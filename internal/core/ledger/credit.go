package ledger

import (
	"fmt"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditTerms are the negotiated conditions of a new credit.
type CreditTerms struct {
	ClientID          string
	Capital           decimal.Decimal
	TotalToPay        decimal.Decimal
	InstallmentValue  decimal.Decimal
	TotalInstallments int
	Frequency         domain.Frequency
	StartDate         domain.Date
	FirstPaymentDate  domain.Date
}

// ValidateTerms rejects terms that could never amortize.
func ValidateTerms(t CreditTerms) error {
	switch {
	case t.ClientID == "":
		return fmt.Errorf("%w: client is required", apperrors.ErrValidation)
	case !t.Capital.IsPositive():
		return fmt.Errorf("%w: capital must be positive", apperrors.ErrValidation)
	case t.TotalToPay.LessThan(t.Capital):
		return fmt.Errorf("%w: total to pay %s is less than capital %s", apperrors.ErrValidation, t.TotalToPay, t.Capital)
	case !t.InstallmentValue.IsPositive():
		return fmt.Errorf("%w: installment value must be positive", apperrors.ErrValidation)
	case t.TotalInstallments <= 0:
		return fmt.Errorf("%w: installment count must be positive", apperrors.ErrValidation)
	case !t.Frequency.IsValid():
		return fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, t.Frequency)
	case !isCents(t.Capital) || !isCents(t.TotalToPay) || !isCents(t.InstallmentValue):
		return fmt.Errorf("%w: capital, total to pay and installment value must have at most 2 decimals", apperrors.ErrValidation)
	case t.StartDate.IsZero() || t.FirstPaymentDate.IsZero():
		return fmt.Errorf("%w: start date and first payment date are required", apperrors.ErrValidation)
	case t.FirstPaymentDate.Before(t.StartDate):
		return fmt.Errorf("%w: first payment date %s is before start date %s", apperrors.ErrValidation, t.FirstPaymentDate, t.StartDate)
	}
	covered := t.InstallmentValue.Mul(decimal.NewFromInt(int64(t.TotalInstallments)))
	if covered.LessThan(t.TotalToPay) {
		return fmt.Errorf("%w: %d installments of %s do not cover total to pay %s",
			apperrors.ErrValidation, t.TotalInstallments, t.InstallmentValue, t.TotalToPay)
	}
	return nil
}

// isCents reports whether d fits the NUMERIC(18, 2) money columns without rounding.
func isCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// NewCredit builds an Active credit with an empty ledger.
func NewCredit(creditID string, t CreditTerms) (domain.Credit, error) {
	if creditID == "" {
		return domain.Credit{}, fmt.Errorf("%w: credit id is required", apperrors.ErrInvariantViolation)
	}
	if err := ValidateTerms(t); err != nil {
		return domain.Credit{}, err
	}
	return domain.Credit{
		CreditID:          creditID,
		ClientID:          t.ClientID,
		Capital:           t.Capital,
		TotalToPay:        t.TotalToPay,
		InstallmentValue:  t.InstallmentValue,
		TotalInstallments: t.TotalInstallments,
		Frequency:         t.Frequency,
		StartDate:         t.StartDate,
		FirstPaymentDate:  t.FirstPaymentDate,
		Status:            domain.CreditActive,
		PaidInstallments:  0,
		TotalPaid:         decimal.Zero,
	}, nil
}

// MarkLost moves an Active credit to the terminal Lost state.
func MarkLost(c domain.Credit) (domain.Credit, error) {
	if c.Status != domain.CreditActive {
		return c, fmt.Errorf("%w: credit %s is %s", apperrors.ErrTerminalState, c.CreditID, c.Status)
	}
	c.Status = domain.CreditLost
	return c, nil
}
