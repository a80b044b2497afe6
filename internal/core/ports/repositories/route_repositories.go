package repositories

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
)

// RouteReader defines read operations for route data
type RouteReader interface {
	// FindRouteByID retrieves a specific route by its ID.
	FindRouteByID(ctx context.Context, routeID string) (*domain.Route, error)

	// FindRoutesByIDs retrieves the routes that exist among routeIDs.
	FindRoutesByIDs(ctx context.Context, routeIDs []string) ([]domain.Route, error)

	// ListRoutes retrieves all routes ordered by name.
	ListRoutes(ctx context.Context) ([]domain.Route, error)
}

// RouteWriter defines write operations for route data
type RouteWriter interface {
	// SaveRoute persists a new route.
	SaveRoute(ctx context.Context, route domain.Route) error
}

// RouteRepositoryFacade combines all route-related repository interfaces
type RouteRepositoryFacade interface {
	RouteReader
	RouteWriter
}
