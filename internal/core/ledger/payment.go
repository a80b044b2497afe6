package ledger

import (
	"fmt"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentInput describes a collection to apply to a credit.
type PaymentInput struct {
	PaymentID string
	Amount    decimal.Decimal
	Date      domain.Date
	Note      string
}

// ApplyPayment records a new payment against an Active credit and recomputes the
// credit from the full history, never from a running delta.
func ApplyPayment(c domain.Credit, history []domain.Payment, in PaymentInput) (domain.Credit, domain.Payment, error) {
	if in.PaymentID == "" {
		return c, domain.Payment{}, fmt.Errorf("%w: payment id is required", apperrors.ErrInvariantViolation)
	}
	if !in.Amount.IsPositive() {
		return c, domain.Payment{}, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, in.Amount)
	}
	if !isCents(in.Amount) {
		return c, domain.Payment{}, fmt.Errorf("%w: payment amount %s has more than 2 decimals", apperrors.ErrValidation, in.Amount)
	}
	if in.Date.IsZero() {
		return c, domain.Payment{}, fmt.Errorf("%w: payment date is required", apperrors.ErrValidation)
	}
	if c.Status != domain.CreditActive {
		return c, domain.Payment{}, fmt.Errorf("%w: credit %s is %s and accepts no payments", apperrors.ErrTerminalState, c.CreditID, c.Status)
	}

	p := domain.Payment{
		PaymentID: in.PaymentID,
		CreditID:  c.CreditID,
		Date:      in.Date,
		Amount:    in.Amount,
		Note:      in.Note,
	}
	all := make([]domain.Payment, 0, len(history)+1)
	all = append(all, history...)
	all = append(all, p)
	return Recompute(c, all), p, nil
}

// CorrectPayment changes the amount of an existing payment and recomputes the credit.
func CorrectPayment(c domain.Credit, history []domain.Payment, paymentID string, amount decimal.Decimal) (domain.Credit, domain.Payment, error) {
	if !amount.IsPositive() {
		return c, domain.Payment{}, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, amount)
	}
	if !isCents(amount) {
		return c, domain.Payment{}, fmt.Errorf("%w: payment amount %s has more than 2 decimals", apperrors.ErrValidation, amount)
	}
	return amend(c, history, paymentID, func(p *domain.Payment) error {
		if p.Voided {
			return fmt.Errorf("%w: payment %s is voided", apperrors.ErrValidation, p.PaymentID)
		}
		p.Amount = amount
		return nil
	})
}

// VoidPayment excludes an existing payment from the ledger and recomputes the credit.
func VoidPayment(c domain.Credit, history []domain.Payment, paymentID string) (domain.Credit, domain.Payment, error) {
	return amend(c, history, paymentID, func(p *domain.Payment) error {
		if p.Voided {
			return fmt.Errorf("%w: payment %s is already voided", apperrors.ErrValidation, p.PaymentID)
		}
		p.Voided = true
		return nil
	})
}

// amend applies change to one payment of history and recomputes c wholesale.
// Lost credits are frozen, and a Paid credit may not drop back below its total.
func amend(c domain.Credit, history []domain.Payment, paymentID string, change func(*domain.Payment) error) (domain.Credit, domain.Payment, error) {
	if c.Status == domain.CreditLost {
		return c, domain.Payment{}, fmt.Errorf("%w: credit %s is LOST", apperrors.ErrTerminalState, c.CreditID)
	}

	idx := -1
	for i := range history {
		if history[i].PaymentID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c, domain.Payment{}, fmt.Errorf("%w: payment %s on credit %s", apperrors.ErrNotFound, paymentID, c.CreditID)
	}

	updated := make([]domain.Payment, len(history))
	copy(updated, history)
	if err := change(&updated[idx]); err != nil {
		return c, domain.Payment{}, err
	}

	next := Recompute(c, updated)
	if c.Status == domain.CreditPaid && next.TotalPaid.LessThan(c.TotalToPay) {
		return c, domain.Payment{}, fmt.Errorf("%w: credit %s is PAID and cannot be reopened (total paid would become %s of %s)",
			apperrors.ErrTerminalState, c.CreditID, next.TotalPaid, c.TotalToPay)
	}
	return next, updated[idx], nil
}
