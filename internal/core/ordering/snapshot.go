package ordering

import (
	"sort"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
)

// Snapshot is a consistent, read-only view of the routes and clients an
// operation works against. Every computation in this package reads only from
// a Snapshot so that source and destination of a move see the same state.
type Snapshot struct {
	routes  map[string]struct{}
	byRoute map[string][]domain.Client
	byID    map[string]domain.Client
}

// NewSnapshot indexes routes and clients. Clients on routes that are not listed
// are still indexed, but operations targeting those routes fail.
func NewSnapshot(routes []domain.Route, clients []domain.Client) Snapshot {
	s := Snapshot{
		routes:  make(map[string]struct{}, len(routes)),
		byRoute: make(map[string][]domain.Client),
		byID:    make(map[string]domain.Client, len(clients)),
	}
	for _, r := range routes {
		s.routes[r.RouteID] = struct{}{}
	}
	for _, c := range clients {
		s.byRoute[c.RouteID] = append(s.byRoute[c.RouteID], c)
		s.byID[c.ClientID] = c
	}
	return s
}

// HasRoute reports whether routeID is part of the snapshot.
func (s Snapshot) HasRoute(routeID string) bool {
	_, ok := s.routes[routeID]
	return ok
}

// Client looks up a client by id.
func (s Snapshot) Client(clientID string) (domain.Client, bool) {
	c, ok := s.byID[clientID]
	return c, ok
}

// ActiveClients returns the Active clients of a route ordered by their current
// order. Equal orders keep their snapshot order.
func (s Snapshot) ActiveClients(routeID string) []domain.Client {
	return s.activeExcluding(routeID, "")
}

// InactiveClients returns the Inactive clients of a route by name. Their
// stored orders are stale and carry no meaning.
func (s Snapshot) InactiveClients(routeID string) []domain.Client {
	var out []domain.Client
	for _, c := range s.byRoute[routeID] {
		if !c.IsActive() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ActiveCount is the N of the route's 1..N ordering.
func (s Snapshot) ActiveCount(routeID string) int {
	return len(s.activeExcluding(routeID, ""))
}

func (s Snapshot) activeExcluding(routeID, clientID string) []domain.Client {
	all := s.byRoute[routeID]
	out := make([]domain.Client, 0, len(all))
	for _, c := range all {
		if c.IsActive() && c.ClientID != clientID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
