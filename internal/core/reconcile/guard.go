package reconcile

import (
	"fmt"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
)

// CanDeactivate reports whether client may move to Inactive given its current
// active credit (nil when it has none). Only an Active credit with a positive
// balance blocks deactivation.
func CanDeactivate(client domain.Client, activeCredit *domain.Credit) bool {
	if activeCredit == nil || activeCredit.Status != domain.CreditActive {
		return true
	}
	return !activeCredit.Balance().IsPositive()
}

// CheckStatusChange validates a status transition of client to next.
// Reactivation is always allowed.
func CheckStatusChange(client domain.Client, next domain.ClientStatus, activeCredit *domain.Credit) error {
	switch next {
	case domain.ClientActive:
		return nil
	case domain.ClientInactive:
	default:
		return fmt.Errorf("%w: unknown client status %q", apperrors.ErrValidation, next)
	}
	if client.Status == domain.ClientInactive {
		return nil
	}
	if activeCredit != nil && activeCredit.ClientID != client.ClientID {
		return fmt.Errorf("%w: credit %s does not belong to client %s",
			apperrors.ErrInvariantViolation, activeCredit.CreditID, client.ClientID)
	}
	if !CanDeactivate(client, activeCredit) {
		return &apperrors.BalanceBlockedError{
			ClientID: client.ClientID,
			CreditID: activeCredit.CreditID,
			Balance:  activeCredit.Balance(),
		}
	}
	return nil
}
