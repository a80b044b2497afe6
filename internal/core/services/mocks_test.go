package services_test

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock RouteRepository ---
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) FindRouteByID(ctx context.Context, routeID string) (*domain.Route, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) FindRoutesByIDs(ctx context.Context, routeIDs []string) ([]domain.Route, error) {
	args := m.Called(ctx, routeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteRepository) SaveRoute(ctx context.Context, route domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByIdentificationNumber(ctx context.Context, identificationNumber string) (*domain.Client, error) {
	args := m.Called(ctx, identificationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClientsByRouteIDs(ctx context.Context, routeIDs []string) ([]domain.Client, error) {
	args := m.Called(ctx, routeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpsertClients(ctx context.Context, mutations []domain.ClientMutation) error {
	args := m.Called(ctx, mutations)
	return args.Error(0)
}

// --- Mock CreditRepository ---
type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) FindCreditByID(ctx context.Context, creditID string) (*domain.Credit, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindActiveCreditByClientID(ctx context.Context, clientID string) (*domain.Credit, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) ListCreditsByClientID(ctx context.Context, clientID string) ([]domain.Credit, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) ListActiveCreditsByRouteID(ctx context.Context, routeID string) ([]domain.Credit, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) SaveCredit(ctx context.Context, credit domain.Credit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

func (m *MockCreditRepository) UpdateCredit(ctx context.Context, credit domain.Credit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByCreditID(ctx context.Context, creditID string) ([]domain.Payment, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByCreditIDs(ctx context.Context, creditIDs []string) (map[string][]domain.Payment, error) {
	args := m.Called(ctx, creditIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsPage(ctx context.Context, creditID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, creditID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), next, args.Error(2)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, credit domain.Credit) error {
	args := m.Called(ctx, payment, credit)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, credit domain.Credit) error {
	args := m.Called(ctx, payment, credit)
	return args.Error(0)
}
