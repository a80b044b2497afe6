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
	"github.com/SscSPs/route_lending_app/internal/core/reconcile"
	"github.com/SscSPs/route_lending_app/internal/dto"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	routeRepo   portsrepo.RouteReader
	clientRepo  portsrepo.ClientRepositoryFacade
	creditRepo  portsrepo.CreditReader
	paymentRepo portsrepo.PaymentReader
}

// NewClientService creates a new client service with the provided options
func NewClientService(
	routeRepo portsrepo.RouteReader,
	clientRepo portsrepo.ClientRepositoryFacade,
	creditRepo portsrepo.CreditReader,
	paymentRepo portsrepo.PaymentReader,
	options ...ServiceOption,
) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: newBaseService(options...),
		routeRepo:   routeRepo,
		clientRepo:  clientRepo,
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by ID", slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) EnrollClient(ctx context.Context, req dto.EnrollClientRequest, creatorUserID string) (*domain.Client, error) {
	idNumber := strings.TrimSpace(req.IdentificationNumber)
	name := strings.TrimSpace(req.Name)
	if idNumber == "" || name == "" {
		return nil, fmt.Errorf("%w: identification number and name are required", apperrors.ErrValidation)
	}

	if _, err := s.routeRepo.FindRouteByID(ctx, req.RouteID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: route %s does not exist", apperrors.ErrValidation, req.RouteID)
		}
		s.LogError(ctx, err, "Failed to find route for enrollment", slog.String("route_id", req.RouteID))
		return nil, err
	}

	existing, err := s.clientRepo.FindClientByIdentificationNumber(ctx, idNumber)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: identification number %s already belongs to client %s",
			apperrors.ErrDuplicate, idNumber, existing.ClientID)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check identification number")
		return nil, err
	}

	unlock := s.Locks.Lock(routeKey(req.RouteID))
	defer unlock()

	snap, err := loadSnapshot(ctx, s.routeRepo, s.clientRepo, req.RouteID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load route snapshot", slog.String("route_id", req.RouteID))
		return nil, err
	}

	now := s.Now()
	client := domain.Client{
		ClientID:             s.NewID(),
		IdentificationNumber: idNumber,
		Name:                 name,
		Alias:                strings.TrimSpace(req.Alias),
		Address:              strings.TrimSpace(req.Address),
		Phone:                strings.TrimSpace(req.Phone),
		Status:               domain.ClientActive,
		Location:             req.Location.ToDomain(),
		AuditFields:          domain.NewAuditFields(creatorUserID, now),
	}
	muts, placed, err := ordering.Append(snap, client, req.RouteID)
	if err != nil {
		s.LogError(ctx, err, "Failed to place new client", slog.String("route_id", req.RouteID))
		return nil, err
	}
	for i := range muts {
		muts[i].Client.Touch(creatorUserID, now)
	}
	muts = append(muts, domain.ClientMutation{Client: placed})

	if err := s.clientRepo.UpsertClients(ctx, muts); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save client", slog.String("client_id", placed.ClientID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client enrolled successfully",
		slog.String("client_id", placed.ClientID),
		slog.String("route_id", placed.RouteID),
		slog.Int("order", placed.Order))
	return &placed, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, []domain.ClientMutation, error) {
	current, err := s.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}
	destRoute := current.RouteID
	if req.RouteID != nil && *req.RouteID != "" {
		destRoute = *req.RouteID
	}

	unlock := s.Locks.Lock(routeKey(current.RouteID), routeKey(destRoute), clientKey(clientID))
	defer unlock()

	snap, err := loadSnapshot(ctx, s.routeRepo, s.clientRepo, current.RouteID, destRoute)
	if err != nil {
		s.LogError(ctx, err, "Failed to load route snapshot", slog.String("client_id", clientID))
		return nil, nil, err
	}
	// The record under the lock is the one the edit reconciles against.
	original, ok := snap.Client(clientID)
	if !ok || original.RouteID != current.RouteID {
		return nil, nil, fmt.Errorf("%w: client %s left route %s while the edit waited",
			apperrors.ErrConflict, clientID, current.RouteID)
	}

	activeCredit, err := s.creditRepo.FindActiveCreditByClientID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find active credit", slog.String("client_id", clientID))
			return nil, nil, err
		}
		activeCredit = nil
	}
	if activeCredit != nil {
		// The guard reads the balance from the payment history, not the stored totals.
		payments, err := s.paymentRepo.ListPaymentsByCreditID(ctx, activeCredit.CreditID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list payments for active credit",
				slog.String("client_id", clientID), slog.String("credit_id", activeCredit.CreditID))
			return nil, nil, err
		}
		recomputed := ledger.Recompute(*activeCredit, payments)
		activeCredit = &recomputed
	}

	proposal := buildProposal(original, destRoute, req)
	muts, err := reconcile.ReconcileClientEdit(original, proposal, snap, activeCredit)
	if err != nil {
		logAttrs := []any{slog.String("client_id", clientID), slog.String("route_id", destRoute)}
		if errors.Is(err, apperrors.ErrInvariantViolation) {
			s.LogError(ctx, err, "Client edit violates route ordering", logAttrs...)
		} else {
			s.LogWarn(ctx, err, "Client edit rejected", logAttrs...)
		}
		return nil, nil, err
	}
	if len(muts) == 0 {
		s.LogDebug(ctx, "Client edit changes nothing", slog.String("client_id", clientID))
		return &original, []domain.ClientMutation{}, nil
	}

	now := s.Now()
	for i := range muts {
		muts[i].Client.Touch(userID, now)
	}
	if err := s.clientRepo.UpsertClients(ctx, muts); err != nil {
		s.LogError(ctx, err, "Failed to write client edit", slog.String("client_id", clientID))
		return nil, nil, err
	}

	edited := muts[len(muts)-1].Client
	s.LogInfo(ctx, "Client updated successfully",
		slog.String("client_id", clientID),
		slog.String("route_id", edited.RouteID),
		slog.String("status", string(edited.Status)),
		slog.Int("records_written", len(muts)))
	return &edited, muts, nil
}

func buildProposal(original domain.Client, destRoute string, req dto.UpdateClientRequest) reconcile.Proposal {
	proposed := original
	proposed.RouteID = destRoute
	if req.IdentificationNumber != nil {
		proposed.IdentificationNumber = strings.TrimSpace(*req.IdentificationNumber)
	}
	if req.Name != nil {
		proposed.Name = strings.TrimSpace(*req.Name)
	}
	if req.Alias != nil {
		proposed.Alias = strings.TrimSpace(*req.Alias)
	}
	if req.Address != nil {
		proposed.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		proposed.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Status != nil {
		proposed.Status = domain.ClientStatus(*req.Status)
	}
	if req.Location != nil {
		proposed.Location = req.Location.ToDomain()
	}

	mode := ordering.PlacementMode(req.Placement)
	if mode == "" {
		mode = ordering.KeepCurrent
	}
	return reconcile.Proposal{
		Client:    proposed,
		Placement: ordering.Placement{Mode: mode, Position: req.Position},
	}
}
