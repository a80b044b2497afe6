package ordering

import (
	"fmt"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
)

// PlacementMode says where an edited client should land on its route.
type PlacementMode string

const (
	KeepCurrent PlacementMode = "KEEP"
	MoveToEnd   PlacementMode = "END"
	AtPosition  PlacementMode = "POSITION"
)

// Placement is the order intent of an edit.
type Placement struct {
	Mode     PlacementMode
	Position int
}

// InsertAt places client on routeID at position (1..N+1), shifting the Active
// clients at or after position by one. The client itself is excluded from the
// route's current set, so InsertAt also serves reorders within one route.
// It returns the other clients whose records change and the placed client.
func InsertAt(s Snapshot, client domain.Client, routeID string, position int) ([]domain.ClientMutation, domain.Client, error) {
	if !s.HasRoute(routeID) {
		return nil, client, fmt.Errorf("%w: route %s not found", apperrors.ErrInvariantViolation, routeID)
	}
	others := s.activeExcluding(routeID, client.ClientID)
	if position < 1 || position > len(others)+1 {
		return nil, client, fmt.Errorf("%w: position %d out of range 1..%d on route %s",
			apperrors.ErrInvariantViolation, position, len(others)+1, routeID)
	}

	var muts []domain.ClientMutation
	for i, c := range others {
		rank := i + 1
		if rank >= position {
			rank++
		}
		if m, changed := rerank(c, routeID, rank); changed {
			muts = append(muts, m)
		}
	}

	client.RouteID = routeID
	client.Order = position
	return muts, client, nil
}

// Append places client at the end of routeID.
func Append(s Snapshot, client domain.Client, routeID string) ([]domain.ClientMutation, domain.Client, error) {
	return InsertAt(s, client, routeID, len(s.activeExcluding(routeID, client.ClientID))+1)
}

// Remove closes the gap client leaves on its current route by re-ranking the
// remaining Active clients to 1..N in their existing relative order.
func Remove(s Snapshot, client domain.Client) ([]domain.ClientMutation, error) {
	routeID := client.RouteID
	if !s.HasRoute(routeID) {
		return nil, fmt.Errorf("%w: route %s not found", apperrors.ErrInvariantViolation, routeID)
	}
	return rerankAll(s.activeExcluding(routeID, client.ClientID), routeID), nil
}

// Normalize re-ranks every Active client of routeID to 1..N, repairing
// duplicates and gaps. It returns nothing when the route is already dense.
func Normalize(s Snapshot, routeID string) ([]domain.ClientMutation, error) {
	if !s.HasRoute(routeID) {
		return nil, fmt.Errorf("%w: route %s not found", apperrors.ErrInvariantViolation, routeID)
	}
	return rerankAll(s.ActiveClients(routeID), routeID), nil
}

// Move relocates an Active client according to placement, within its route or
// onto routeID. The client's own record is returned separately from the
// mutations of the other clients it displaces.
func Move(s Snapshot, client domain.Client, routeID string, p Placement) ([]domain.ClientMutation, domain.Client, error) {
	if !s.HasRoute(routeID) {
		return nil, client, fmt.Errorf("%w: route %s not found", apperrors.ErrInvariantViolation, routeID)
	}

	if client.RouteID == routeID {
		var position int
		switch p.Mode {
		case KeepCurrent, "":
			return nil, client, nil
		case MoveToEnd:
			position = len(s.activeExcluding(routeID, client.ClientID)) + 1
		case AtPosition:
			position = p.Position
		default:
			return nil, client, fmt.Errorf("%w: unknown placement %q", apperrors.ErrInvariantViolation, p.Mode)
		}
		if position == client.Order {
			return nil, client, nil
		}
		return InsertAt(s, client, routeID, position)
	}

	removed, err := Remove(s, client)
	if err != nil {
		return nil, client, err
	}
	var (
		inserted []domain.ClientMutation
		placed   domain.Client
	)
	switch p.Mode {
	case KeepCurrent, MoveToEnd, "":
		inserted, placed, err = Append(s, client, routeID)
	case AtPosition:
		inserted, placed, err = InsertAt(s, client, routeID, p.Position)
	default:
		err = fmt.Errorf("%w: unknown placement %q", apperrors.ErrInvariantViolation, p.Mode)
	}
	if err != nil {
		return nil, client, err
	}
	return append(removed, inserted...), placed, nil
}

// Verify checks that the Active clients of routeID carry exactly the orders 1..N.
func Verify(s Snapshot, routeID string) error {
	for i, c := range s.ActiveClients(routeID) {
		if c.Order != i+1 {
			return fmt.Errorf("%w: route %s: client %s has order %d, expected %d",
				apperrors.ErrInvariantViolation, routeID, c.ClientID, c.Order, i+1)
		}
	}
	return nil
}

// ApplyMutations returns clients with the mutated records swapped in.
func ApplyMutations(clients []domain.Client, muts []domain.ClientMutation) []domain.Client {
	idx := make(map[string]int, len(clients))
	out := make([]domain.Client, len(clients))
	copy(out, clients)
	for i, c := range out {
		idx[c.ClientID] = i
	}
	for _, m := range muts {
		if i, ok := idx[m.Client.ClientID]; ok {
			out[i] = m.Client
			continue
		}
		idx[m.Client.ClientID] = len(out)
		out = append(out, m.Client)
	}
	return out
}

func rerankAll(ordered []domain.Client, routeID string) []domain.ClientMutation {
	var muts []domain.ClientMutation
	for i, c := range ordered {
		if m, changed := rerank(c, routeID, i+1); changed {
			muts = append(muts, m)
		}
	}
	return muts
}

func rerank(c domain.Client, routeID string, order int) (domain.ClientMutation, bool) {
	if c.Order == order && c.RouteID == routeID {
		return domain.ClientMutation{}, false
	}
	m := domain.ClientMutation{PreviousRouteID: c.RouteID, PreviousOrder: c.Order}
	c.RouteID = routeID
	c.Order = order
	m.Client = c
	return m, true
}
