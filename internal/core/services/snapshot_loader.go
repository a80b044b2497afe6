package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/route_lending_app/internal/core/ordering"
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
)

// loadSnapshot reads the routes among routeIDs that exist and every client on
// them, so the ordering engine sees one consistent view.
func loadSnapshot(ctx context.Context, routeRepo portsrepo.RouteReader, clientRepo portsrepo.ClientReader, routeIDs ...string) (ordering.Snapshot, error) {
	ids := make([]string, 0, len(routeIDs))
	seen := make(map[string]bool, len(routeIDs))
	for _, id := range routeIDs {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	routes, err := routeRepo.FindRoutesByIDs(ctx, ids)
	if err != nil {
		return ordering.Snapshot{}, fmt.Errorf("failed to load routes %v: %w", ids, err)
	}
	clients, err := clientRepo.ListClientsByRouteIDs(ctx, ids)
	if err != nil {
		return ordering.Snapshot{}, fmt.Errorf("failed to load clients of routes %v: %w", ids, err)
	}
	return ordering.NewSnapshot(routes, clients), nil
}
