package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
)

// creditService implements the CreditSvcFacade interface
type creditService struct {
	BaseService
	clientRepo  portsrepo.ClientReader
	creditRepo  portsrepo.CreditRepositoryFacade
	paymentRepo portsrepo.PaymentReader
}

// NewCreditService creates a new credit service with the provided options
func NewCreditService(
	clientRepo portsrepo.ClientReader,
	creditRepo portsrepo.CreditRepositoryFacade,
	paymentRepo portsrepo.PaymentReader,
	options ...ServiceOption,
) portssvc.CreditSvcFacade {
	return &creditService{
		BaseService: newBaseService(options...),
		clientRepo:  clientRepo,
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.CreditSvcFacade = (*creditService)(nil)

func (s *creditService) IssueCredit(ctx context.Context, clientID string, req dto.IssueCreditRequest, creatorUserID string) (*domain.Credit, error) {
	unlock := s.Locks.Lock(clientKey(clientID))
	defer unlock()

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		}
		return nil, err
	}
	if !client.IsActive() {
		err := fmt.Errorf("%w: client %s is inactive and cannot receive credit", apperrors.ErrBusinessRule, clientID)
		s.LogWarn(ctx, err, "Credit issuance rejected", slog.String("client_id", clientID))
		return nil, err
	}

	existing, err := s.creditRepo.FindActiveCreditByClientID(ctx, clientID)
	switch {
	case err == nil:
		err := fmt.Errorf("%w: client %s already has active credit %s", apperrors.ErrBusinessRule, clientID, existing.CreditID)
		s.LogWarn(ctx, err, "Credit issuance rejected", slog.String("client_id", clientID))
		return nil, err
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check for active credit", slog.String("client_id", clientID))
		return nil, err
	}

	credit, err := ledger.NewCredit(s.NewID(), req.ToTerms(clientID))
	if err != nil {
		s.LogWarn(ctx, err, "Invalid credit terms", slog.String("client_id", clientID))
		return nil, err
	}
	credit.AuditFields = domain.NewAuditFields(creatorUserID, s.Now())

	if err := s.creditRepo.SaveCredit(ctx, credit); err != nil {
		s.LogError(ctx, err, "Failed to save credit", slog.String("credit_id", credit.CreditID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit issued successfully",
		slog.String("credit_id", credit.CreditID),
		slog.String("client_id", clientID),
		slog.String("total_to_pay", credit.TotalToPay.String()))
	return &credit, nil
}

func (s *creditService) GetCreditStatement(ctx context.Context, creditID string) (*ledger.Statement, error) {
	credit, err := s.findCredit(ctx, creditID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByCreditID(ctx, creditID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("credit_id", creditID))
		return nil, err
	}

	st := ledger.NewStatement(*credit, payments, s.Clock.Today())
	if !st.Credit.TotalPaid.Equal(credit.TotalPaid) {
		s.LogWarn(ctx, apperrors.ErrInvariantViolation, "Stored credit totals differ from payment history",
			slog.String("credit_id", creditID),
			slog.String("stored_total_paid", credit.TotalPaid.String()),
			slog.String("recomputed_total_paid", st.Credit.TotalPaid.String()))
	}
	return &st, nil
}

func (s *creditService) ListClientCredits(ctx context.Context, clientID string) ([]domain.Credit, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, err
	}
	credits, err := s.creditRepo.ListCreditsByClientID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list credits", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list credits for client %s: %w", clientID, err)
	}
	if credits == nil {
		return []domain.Credit{}, nil
	}
	return credits, nil
}

func (s *creditService) MarkCreditLost(ctx context.Context, creditID string, userID string) (*domain.Credit, error) {
	unlock := s.Locks.Lock(creditKey(creditID))
	defer unlock()

	credit, err := s.findCredit(ctx, creditID)
	if err != nil {
		return nil, err
	}
	lost, err := ledger.MarkLost(*credit)
	if err != nil {
		s.LogWarn(ctx, err, "Cannot mark credit as lost", slog.String("credit_id", creditID))
		return nil, err
	}
	lost.Touch(userID, s.Now())

	if err := s.creditRepo.UpdateCredit(ctx, lost); err != nil {
		s.LogError(ctx, err, "Failed to update credit", slog.String("credit_id", creditID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit marked as lost",
		slog.String("credit_id", creditID),
		slog.String("balance", lost.Balance().String()))
	return &lost, nil
}

func (s *creditService) findCredit(ctx context.Context, creditID string) (*domain.Credit, error) {
	credit, err := s.creditRepo.FindCreditByID(ctx, creditID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find credit by ID", slog.String("credit_id", creditID))
		}
		return nil, err
	}
	return credit, nil
}
