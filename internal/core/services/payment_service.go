package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
	"github.com/shopspring/decimal"
)

const defaultPaymentPageSize = 20

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	creditRepo  portsrepo.CreditReader
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(
	creditRepo portsrepo.CreditReader,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	options ...ServiceOption,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService: newBaseService(options...),
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) RecordPayment(ctx context.Context, creditID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, *domain.Credit, error) {
	unlock := s.Locks.Lock(creditKey(creditID))
	defer unlock()

	credit, history, err := s.loadLedger(ctx, creditID)
	if err != nil {
		return nil, nil, err
	}

	date := s.Clock.Today()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}
	updated, payment, err := ledger.ApplyPayment(*credit, history, ledger.PaymentInput{
		PaymentID: s.NewID(),
		Amount:    req.Amount,
		Date:      date,
		Note:      req.Note,
	})
	if err != nil {
		s.LogWarn(ctx, err, "Payment rejected", slog.String("credit_id", creditID))
		return nil, nil, err
	}

	now := s.Now()
	payment.AuditFields = domain.NewAuditFields(userID, now)
	updated.Touch(userID, now)
	if err := s.paymentRepo.SavePayment(ctx, payment, updated); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("credit_id", creditID))
		return nil, nil, err
	}

	s.logApplied(ctx, "Payment recorded", *credit, updated, payment)
	return &payment, &updated, nil
}

func (s *paymentService) CorrectPayment(ctx context.Context, paymentID string, req dto.CorrectPaymentRequest, userID string) (*domain.Payment, *domain.Credit, error) {
	return s.amend(ctx, paymentID, userID, "Payment corrected", func(c domain.Credit, history []domain.Payment) (domain.Credit, domain.Payment, error) {
		return ledger.CorrectPayment(c, history, paymentID, req.Amount)
	})
}

func (s *paymentService) VoidPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, *domain.Credit, error) {
	return s.amend(ctx, paymentID, userID, "Payment voided", func(c domain.Credit, history []domain.Payment) (domain.Credit, domain.Payment, error) {
		return ledger.VoidPayment(c, history, paymentID)
	})
}

func (s *paymentService) ListPayments(ctx context.Context, creditID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if _, err := s.creditRepo.FindCreditByID(ctx, creditID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPaymentPageSize
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	payments, next, err := s.paymentRepo.ListPaymentsPage(ctx, creditID, limit, token)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list payments", slog.String("credit_id", creditID))
		}
		return nil, err
	}
	return &dto.ListPaymentsResponse{
		Payments:  dto.ToListPaymentResponse(payments),
		NextToken: next,
	}, nil
}

type amendFunc func(domain.Credit, []domain.Payment) (domain.Credit, domain.Payment, error)

func (s *paymentService) amend(ctx context.Context, paymentID, userID, action string, apply amendFunc) (*domain.Payment, *domain.Credit, error) {
	existing, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment", slog.String("payment_id", paymentID))
		}
		return nil, nil, err
	}

	unlock := s.Locks.Lock(creditKey(existing.CreditID))
	defer unlock()

	credit, history, err := s.loadLedger(ctx, existing.CreditID)
	if err != nil {
		return nil, nil, err
	}
	updated, payment, err := apply(*credit, history)
	if err != nil {
		s.LogWarn(ctx, err, "Payment amendment rejected", slog.String("payment_id", paymentID))
		return nil, nil, err
	}

	now := s.Now()
	payment.Touch(userID, now)
	updated.Touch(userID, now)
	if err := s.paymentRepo.UpdatePayment(ctx, payment, updated); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, nil, err
	}

	s.logApplied(ctx, action, *credit, updated, payment)
	return &payment, &updated, nil
}

func (s *paymentService) loadLedger(ctx context.Context, creditID string) (*domain.Credit, []domain.Payment, error) {
	credit, err := s.creditRepo.FindCreditByID(ctx, creditID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find credit", slog.String("credit_id", creditID))
		}
		return nil, nil, err
	}
	history, err := s.paymentRepo.ListPaymentsByCreditID(ctx, creditID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payment history", slog.String("credit_id", creditID))
		return nil, nil, err
	}
	return credit, history, nil
}

func (s *paymentService) logApplied(ctx context.Context, msg string, before, after domain.Credit, p domain.Payment) {
	attrs := []any{
		slog.String("credit_id", after.CreditID),
		slog.String("payment_id", p.PaymentID),
		slog.String("amount", p.Amount.String()),
		slog.String("balance", after.Balance().String()),
		slog.Int("paid_installments", after.PaidInstallments),
	}
	if before.Status != after.Status {
		attrs = append(attrs, slog.String("status", string(after.Status)))
	}
	if after.Balance().LessThan(decimal.Zero) {
		attrs = append(attrs, slog.Bool("overpaid", true))
	}
	s.LogInfo(ctx, msg, attrs...)
}
