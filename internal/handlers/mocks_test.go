package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
	"github.com/SscSPs/route_lending_app/internal/pdf"
	"github.com/stretchr/testify/mock"
)

// --- Mock Route Service ---
type MockRouteService struct {
	mock.Mock
}

func (m *MockRouteService) GetRouteByID(ctx context.Context, routeID string) (*domain.Route, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteService) ListRouteClients(ctx context.Context, routeID string, includeInactive bool) ([]domain.Client, error) {
	args := m.Called(ctx, routeID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockRouteService) VerifyRoute(ctx context.Context, routeID string) error {
	args := m.Called(ctx, routeID)
	return args.Error(0)
}

func (m *MockRouteService) RouteSheet(ctx context.Context, routeID string) (*domain.Route, []ledger.Standing, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Route), args.Get(1).([]ledger.Standing), args.Error(2)
}

func (m *MockRouteService) OverdueReport(ctx context.Context, routeID string) ([]ledger.Standing, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Standing), args.Error(1)
}

func (m *MockRouteService) CreateRoute(ctx context.Context, req dto.CreateRouteRequest, creatorUserID string) (*domain.Route, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteService) NormalizeRoute(ctx context.Context, routeID string, userID string) ([]domain.ClientMutation, error) {
	args := m.Called(ctx, routeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientMutation), args.Error(1)
}

var _ portssvc.RouteSvcFacade = (*MockRouteService)(nil)

// --- Mock Client Service ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) EnrollClient(ctx context.Context, req dto.EnrollClientRequest, creatorUserID string) (*domain.Client, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, []domain.ClientMutation, error) {
	args := m.Called(ctx, clientID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Client), args.Get(1).([]domain.ClientMutation), args.Error(2)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock Credit Service ---
type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) GetCreditStatement(ctx context.Context, creditID string) (*ledger.Statement, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Statement), args.Error(1)
}

func (m *MockCreditService) ListClientCredits(ctx context.Context, clientID string) ([]domain.Credit, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Credit), args.Error(1)
}

func (m *MockCreditService) IssueCredit(ctx context.Context, clientID string, req dto.IssueCreditRequest, creatorUserID string) (*domain.Credit, error) {
	args := m.Called(ctx, clientID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditService) MarkCreditLost(ctx context.Context, creditID string, userID string) (*domain.Credit, error) {
	args := m.Called(ctx, creditID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

var _ portssvc.CreditSvcFacade = (*MockCreditService)(nil)

// --- Mock Payment Service ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ListPayments(ctx context.Context, creditID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, creditID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, creditID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, *domain.Credit, error) {
	args := m.Called(ctx, creditID, req, userID)
	return paymentResult(args)
}

func (m *MockPaymentService) CorrectPayment(ctx context.Context, paymentID string, req dto.CorrectPaymentRequest, userID string) (*domain.Payment, *domain.Credit, error) {
	args := m.Called(ctx, paymentID, req, userID)
	return paymentResult(args)
}

func (m *MockPaymentService) VoidPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, *domain.Credit, error) {
	args := m.Called(ctx, paymentID, userID)
	return paymentResult(args)
}

func paymentResult(args mock.Arguments) (*domain.Payment, *domain.Credit, error) {
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Get(1).(*domain.Credit), args.Error(2)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock PDF Generator ---
type MockSheetGenerator struct {
	mock.Mock
}

func (m *MockSheetGenerator) RouteSheet(w io.Writer, data pdf.RouteSheetData) error {
	args := m.Called(w, data)
	if args.Error(0) == nil {
		_, _ = io.WriteString(w, "%PDF-1.3 test")
	}
	return args.Error(0)
}

var _ pdf.Generator = (*MockSheetGenerator)(nil)
