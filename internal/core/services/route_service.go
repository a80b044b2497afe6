package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/SscSPs/route_lending_app/internal/core/ordering"
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
)

// routeService implements the RouteSvcFacade interface
type routeService struct {
	BaseService
	routeRepo   portsrepo.RouteRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
	creditRepo  portsrepo.CreditReader
	paymentRepo portsrepo.PaymentReader
}

// NewRouteService creates a new route service with the provided options
func NewRouteService(
	routeRepo portsrepo.RouteRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	creditRepo portsrepo.CreditReader,
	paymentRepo portsrepo.PaymentReader,
	options ...ServiceOption,
) portssvc.RouteSvcFacade {
	return &routeService{
		BaseService: newBaseService(options...),
		routeRepo:   routeRepo,
		clientRepo:  clientRepo,
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.RouteSvcFacade = (*routeService)(nil)

func (s *routeService) CreateRoute(ctx context.Context, req dto.CreateRouteRequest, creatorUserID string) (*domain.Route, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: route name is required", apperrors.ErrValidation)
	}

	route := domain.Route{
		RouteID:     s.NewID(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		AuditFields: domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if err := s.routeRepo.SaveRoute(ctx, route); err != nil {
		s.LogError(ctx, err, "Failed to save route", slog.String("route_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Route created successfully", slog.String("route_id", route.RouteID))
	return &route, nil
}

func (s *routeService) GetRouteByID(ctx context.Context, routeID string) (*domain.Route, error) {
	route, err := s.routeRepo.FindRouteByID(ctx, routeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find route by ID", slog.String("route_id", routeID))
		}
		return nil, err
	}
	return route, nil
}

func (s *routeService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	routes, err := s.routeRepo.ListRoutes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list routes")
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	if routes == nil {
		return []domain.Route{}, nil
	}
	return routes, nil
}

func (s *routeService) ListRouteClients(ctx context.Context, routeID string, includeInactive bool) ([]domain.Client, error) {
	if _, err := s.GetRouteByID(ctx, routeID); err != nil {
		return nil, err
	}
	snap, err := loadSnapshot(ctx, s.routeRepo, s.clientRepo, routeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load route snapshot", slog.String("route_id", routeID))
		return nil, err
	}

	clients := snap.ActiveClients(routeID)
	if includeInactive {
		clients = append(clients, snap.InactiveClients(routeID)...)
	}
	return clients, nil
}

func (s *routeService) VerifyRoute(ctx context.Context, routeID string) error {
	if _, err := s.GetRouteByID(ctx, routeID); err != nil {
		return err
	}
	snap, err := loadSnapshot(ctx, s.routeRepo, s.clientRepo, routeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load route snapshot", slog.String("route_id", routeID))
		return err
	}
	if err := ordering.Verify(snap, routeID); err != nil {
		s.LogError(ctx, err, "Route ordering is inconsistent", slog.String("route_id", routeID))
		return err
	}
	s.LogDebug(ctx, "Route ordering verified",
		slog.String("route_id", routeID),
		slog.Int("active_clients", snap.ActiveCount(routeID)))
	return nil
}

func (s *routeService) NormalizeRoute(ctx context.Context, routeID string, userID string) ([]domain.ClientMutation, error) {
	if _, err := s.GetRouteByID(ctx, routeID); err != nil {
		return nil, err
	}

	unlock := s.Locks.Lock(routeKey(routeID))
	defer unlock()

	snap, err := loadSnapshot(ctx, s.routeRepo, s.clientRepo, routeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load route snapshot", slog.String("route_id", routeID))
		return nil, err
	}
	muts, err := ordering.Normalize(snap, routeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to normalize route", slog.String("route_id", routeID))
		return nil, err
	}
	if len(muts) == 0 {
		s.LogDebug(ctx, "Route already consistent", slog.String("route_id", routeID))
		return []domain.ClientMutation{}, nil
	}

	now := s.Now()
	for i := range muts {
		muts[i].Client.Touch(userID, now)
	}
	if err := s.clientRepo.UpsertClients(ctx, muts); err != nil {
		s.LogError(ctx, err, "Failed to write normalized route", slog.String("route_id", routeID))
		return nil, err
	}

	s.LogInfo(ctx, "Route normalized",
		slog.String("route_id", routeID),
		slog.Int("active_clients", snap.ActiveCount(routeID)),
		slog.Int("changed", len(muts)))
	return muts, nil
}

func (s *routeService) RouteSheet(ctx context.Context, routeID string) (*domain.Route, []ledger.Standing, error) {
	route, err := s.GetRouteByID(ctx, routeID)
	if err != nil {
		return nil, nil, err
	}
	snap, err := loadSnapshot(ctx, s.routeRepo, s.clientRepo, routeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load route snapshot", slog.String("route_id", routeID))
		return nil, nil, err
	}

	credits, err := s.creditRepo.ListActiveCreditsByRouteID(ctx, routeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active credits", slog.String("route_id", routeID))
		return nil, nil, err
	}
	byClient := make(map[string]domain.Credit, len(credits))
	creditIDs := make([]string, 0, len(credits))
	for _, c := range credits {
		byClient[c.ClientID] = c
		creditIDs = append(creditIDs, c.CreditID)
	}
	payments, err := s.paymentRepo.ListPaymentsByCreditIDs(ctx, creditIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for route", slog.String("route_id", routeID))
		return nil, nil, err
	}

	standings := ledger.Standings(snap.ActiveClients(routeID), byClient, payments, s.Clock.Today())
	return route, standings, nil
}

func (s *routeService) OverdueReport(ctx context.Context, routeID string) ([]ledger.Standing, error) {
	_, standings, err := s.RouteSheet(ctx, routeID)
	if err != nil {
		return nil, err
	}
	overdue := ledger.Overdue(standings)
	s.LogDebug(ctx, "Overdue report computed",
		slog.String("route_id", routeID),
		slog.Int("active_clients", len(standings)),
		slog.Int("overdue", len(overdue)))
	return overdue, nil
}
