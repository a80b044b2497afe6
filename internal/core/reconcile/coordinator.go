package reconcile

import (
	"fmt"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ordering"
)

// Proposal is the edited form of a client plus where it should be placed.
// Order on Client is ignored; placement decides it.
type Proposal struct {
	Client    domain.Client
	Placement ordering.Placement
}

// ReconcileClientEdit computes every client record that must be written for
// one edit to leave the source and destination routes dense. The edited
// client is always the last mutation. Any failure yields no mutations.
// An edit that changes nothing yields an empty list.
func ReconcileClientEdit(original domain.Client, p Proposal, snapshot ordering.Snapshot, activeCredit *domain.Credit) ([]domain.ClientMutation, error) {
	proposed := p.Client
	if proposed.ClientID != original.ClientID {
		return nil, fmt.Errorf("%w: proposal for client %s applied to client %s",
			apperrors.ErrInvariantViolation, proposed.ClientID, original.ClientID)
	}
	if proposed.IdentificationNumber != original.IdentificationNumber {
		return nil, fmt.Errorf("%w: identification number cannot be changed", apperrors.ErrValidation)
	}
	if proposed.Name != original.Name {
		return nil, fmt.Errorf("%w: name cannot be changed", apperrors.ErrValidation)
	}
	if proposed.Status == "" {
		proposed.Status = original.Status
	}
	if err := CheckStatusChange(original, proposed.Status, activeCredit); err != nil {
		return nil, err
	}

	destRoute := proposed.RouteID
	if destRoute == "" {
		destRoute = original.RouteID
	}

	edited := original
	edited.Alias = proposed.Alias
	edited.Address = proposed.Address
	edited.Phone = proposed.Phone
	edited.Location = proposed.Location
	edited.Status = proposed.Status

	wasActive := original.IsActive()
	willBeActive := edited.IsActive()

	var (
		muts []domain.ClientMutation
		err  error
	)
	switch {
	case wasActive && willBeActive:
		var placed domain.Client
		muts, placed, err = ordering.Move(snapshot, original, destRoute, p.Placement)
		edited.RouteID, edited.Order = placed.RouteID, placed.Order

	case wasActive && !willBeActive:
		if !snapshot.HasRoute(destRoute) {
			return nil, fmt.Errorf("%w: route %s not found", apperrors.ErrInvariantViolation, destRoute)
		}
		muts, err = ordering.Remove(snapshot, original)
		edited.RouteID = destRoute

	case !wasActive && willBeActive:
		var placed domain.Client
		if p.Placement.Mode == ordering.AtPosition {
			muts, placed, err = ordering.InsertAt(snapshot, edited, destRoute, p.Placement.Position)
		} else {
			muts, placed, err = ordering.Append(snapshot, edited, destRoute)
		}
		edited.RouteID, edited.Order = placed.RouteID, placed.Order

	default:
		if !snapshot.HasRoute(destRoute) {
			return nil, fmt.Errorf("%w: route %s not found", apperrors.ErrInvariantViolation, destRoute)
		}
		edited.RouteID = destRoute
	}
	if err != nil {
		return nil, err
	}

	if len(muts) == 0 && sameRecord(original, edited) {
		return nil, nil
	}
	return append(muts, domain.ClientMutation{
		Client:          edited,
		PreviousRouteID: original.RouteID,
		PreviousOrder:   original.Order,
	}), nil
}

func sameRecord(a, b domain.Client) bool {
	if (a.Location == nil) != (b.Location == nil) {
		return false
	}
	if a.Location != nil && *a.Location != *b.Location {
		return false
	}
	a.Location, b.Location = nil, nil
	return a == b
}
