package services

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/SscSPs/route_lending_app/internal/dto"
)

// RouteReaderSvc defines read operations for route data
type RouteReaderSvc interface {
	// GetRouteByID retrieves a specific route by its ID.
	GetRouteByID(ctx context.Context, routeID string) (*domain.Route, error)

	// ListRoutes retrieves all routes.
	ListRoutes(ctx context.Context) ([]domain.Route, error)

	// ListRouteClients retrieves the clients of a route. Active clients come
	// first in visiting order; inactive ones follow only when requested.
	ListRouteClients(ctx context.Context, routeID string, includeInactive bool) ([]domain.Client, error)

	// VerifyRoute reports an ErrInvariantViolation when the route's active
	// clients are not ordered exactly 1..N.
	VerifyRoute(ctx context.Context, routeID string) error
}

// RouteCollectionSvc defines the collection-day views of a route
type RouteCollectionSvc interface {
	// RouteSheet returns every active client of a route in visiting order with its credit standing.
	RouteSheet(ctx context.Context, routeID string) (*domain.Route, []ledger.Standing, error)

	// OverdueReport returns the active clients of a route whose credit is behind schedule.
	OverdueReport(ctx context.Context, routeID string) ([]ledger.Standing, error)
}

// RouteWriterSvc defines write operations for route data
type RouteWriterSvc interface {
	// CreateRoute persists a new route.
	CreateRoute(ctx context.Context, req dto.CreateRouteRequest, creatorUserID string) (*domain.Route, error)

	// NormalizeRoute re-ranks a route whose stored orders drifted and returns the rewritten records.
	NormalizeRoute(ctx context.Context, routeID string, userID string) ([]domain.ClientMutation, error)
}

// RouteSvcFacade combines all route-related service interfaces
type RouteSvcFacade interface {
	RouteReaderSvc
	RouteCollectionSvc
	RouteWriterSvc
}
