package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/core/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	routeRepo   *MockRouteRepository
	clientRepo  *MockClientRepository
	creditRepo  *MockCreditRepository
	paymentRepo *MockPaymentRepository
	service     portssvc.ClientSvcFacade

	routes  []domain.Route
	clients []domain.Client
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.routeRepo = new(MockRouteRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.creditRepo = new(MockCreditRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.service = services.NewClientService(suite.routeRepo, suite.clientRepo, suite.creditRepo, suite.paymentRepo, testOptions()...)

	suite.routes = []domain.Route{{RouteID: "A", Name: "North"}, {RouteID: "B", Name: "South"}}
	suite.clients = []domain.Client{
		activeClient("A1", "A", 1),
		activeClient("A2", "A", 2),
		activeClient("A3", "A", 3),
		activeClient("B1", "B", 1),
		activeClient("B2", "B", 2),
	}
}

func (suite *ClientServiceTestSuite) clientsOn(routeIDs ...string) []domain.Client {
	var out []domain.Client
	for _, c := range suite.clients {
		for _, r := range routeIDs {
			if c.RouteID == r {
				out = append(out, c)
			}
		}
	}
	return out
}

func (suite *ClientServiceTestSuite) routesFor(routeIDs ...string) []domain.Route {
	var out []domain.Route
	for _, r := range suite.routes {
		for _, id := range routeIDs {
			if r.RouteID == id {
				out = append(out, r)
			}
		}
	}
	return out
}

func (suite *ClientServiceTestSuite) expectSnapshot(ctx context.Context, routeIDs ...string) {
	suite.routeRepo.On("FindRoutesByIDs", ctx, routeIDs).Return(suite.routesFor(routeIDs...), nil).Once()
	suite.clientRepo.On("ListClientsByRouteIDs", ctx, routeIDs).Return(suite.clientsOn(routeIDs...), nil).Once()
}

func (suite *ClientServiceTestSuite) expectClient(ctx context.Context, c domain.Client) {
	suite.clientRepo.On("FindClientByID", ctx, c.ClientID).Return(&c, nil).Once()
}

func (suite *ClientServiceTestSuite) assertAll() {
	suite.routeRepo.AssertExpectations(suite.T())
	suite.clientRepo.AssertExpectations(suite.T())
	suite.creditRepo.AssertExpectations(suite.T())
	suite.paymentRepo.AssertExpectations(suite.T())
}

// --- Enrollment ---

func (suite *ClientServiceTestSuite) TestEnrollClient_AppendsToRoute() {
	ctx := context.Background()
	req := dto.EnrollClientRequest{
		RouteID:              "A",
		IdentificationNumber: " 1020 ",
		Name:                 "Ana Gomez",
		Phone:                "555-0101",
		Location:             &dto.GeoPointRequest{Latitude: 4.6, Longitude: -74.1},
	}

	suite.routeRepo.On("FindRouteByID", ctx, "A").Return(&suite.routes[0], nil).Once()
	suite.clientRepo.On("FindClientByIdentificationNumber", ctx, "1020").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectSnapshot(ctx, "A")
	suite.clientRepo.On("UpsertClients", ctx, mock.MatchedBy(func(muts []domain.ClientMutation) bool {
		return len(muts) == 1 &&
			muts[0].PreviousRouteID == "" &&
			muts[0].Client.Order == 4 &&
			muts[0].Client.RouteID == "A"
	})).Return(nil).Once()

	client, err := suite.service.EnrollClient(ctx, req, "collector-1")

	suite.Require().NoError(err)
	suite.Equal("id-1", client.ClientID)
	suite.Equal("1020", client.IdentificationNumber)
	suite.Equal(4, client.Order)
	suite.Equal(domain.ClientActive, client.Status)
	suite.Require().NotNil(client.Location)
	suite.Equal(4.6, client.Location.Latitude)
	suite.Equal("collector-1", client.CreatedBy)
	suite.Equal(testNow, client.CreatedAt)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestEnrollClient_DuplicateIdentification() {
	ctx := context.Background()
	req := dto.EnrollClientRequest{RouteID: "A", IdentificationNumber: "ID-A1", Name: "Someone"}
	existing := suite.clients[0]

	suite.routeRepo.On("FindRouteByID", ctx, "A").Return(&suite.routes[0], nil).Once()
	suite.clientRepo.On("FindClientByIdentificationNumber", ctx, "ID-A1").Return(&existing, nil).Once()

	client, err := suite.service.EnrollClient(ctx, req, "collector-1")

	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.clientRepo.AssertNotCalled(suite.T(), "UpsertClients", mock.Anything, mock.Anything)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestEnrollClient_UnknownRoute() {
	ctx := context.Background()
	req := dto.EnrollClientRequest{RouteID: "Z", IdentificationNumber: "77", Name: "Someone"}

	suite.routeRepo.On("FindRouteByID", ctx, "Z").Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.EnrollClient(ctx, req, "collector-1")

	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestEnrollClient_BlankName() {
	client, err := suite.service.EnrollClient(context.Background(),
		dto.EnrollClientRequest{RouteID: "A", IdentificationNumber: "77", Name: "   "}, "collector-1")

	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Edits ---

func (suite *ClientServiceTestSuite) TestUpdateClient_DeactivationBlockedByBalance() {
	ctx := context.Background()
	target := suite.clients[1]
	credit := weeklyCredit("C1", target.ClientID)
	credit.TotalPaid = decimal.NewFromInt(1050)
	history := []domain.Payment{
		payment("P1", credit.CreditID, 1000, domain.NewDate(2024, time.March, 4)),
		payment("P2", credit.CreditID, 50, domain.NewDate(2024, time.March, 11)),
	}

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(&credit, nil).Once()
	suite.paymentRepo.On("ListPaymentsByCreditID", ctx, credit.CreditID).Return(history, nil).Once()
	suite.expectSnapshot(ctx, "A")

	client, muts, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{Status: strPtr("INACTIVE")}, "collector-1")

	suite.Nil(client)
	suite.Nil(muts)
	suite.ErrorIs(err, apperrors.ErrBusinessRule)
	var blocked *apperrors.BalanceBlockedError
	suite.Require().True(errors.As(err, &blocked))
	suite.True(decimal.NewFromInt(50).Equal(blocked.Balance))
	suite.clientRepo.AssertNotCalled(suite.T(), "UpsertClients", mock.Anything, mock.Anything)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestUpdateClient_DeactivationUsesPaymentHistory() {
	ctx := context.Background()
	target := suite.clients[1]
	credit := weeklyCredit("C1", target.ClientID)
	// Stored totals claim the credit is settled, but P2 was voided afterwards.
	credit.TotalPaid = decimal.NewFromInt(1100)
	voided := payment("P2", credit.CreditID, 100, domain.NewDate(2024, time.March, 11))
	voided.Voided = true
	history := []domain.Payment{
		payment("P1", credit.CreditID, 1000, domain.NewDate(2024, time.March, 4)),
		voided,
	}

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(&credit, nil).Once()
	suite.paymentRepo.On("ListPaymentsByCreditID", ctx, credit.CreditID).Return(history, nil).Once()
	suite.expectSnapshot(ctx, "A")

	client, muts, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{Status: strPtr("INACTIVE")}, "collector-1")

	suite.Nil(client)
	suite.Nil(muts)
	var blocked *apperrors.BalanceBlockedError
	suite.Require().True(errors.As(err, &blocked))
	suite.True(decimal.NewFromInt(100).Equal(blocked.Balance))
	suite.clientRepo.AssertNotCalled(suite.T(), "UpsertClients", mock.Anything, mock.Anything)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestUpdateClient_DeactivationAllowedWhenHistoryCoversTotal() {
	ctx := context.Background()
	target := suite.clients[1]
	credit := weeklyCredit("C1", target.ClientID)
	// The stored totals lag behind the last payment.
	credit.TotalPaid = decimal.NewFromInt(990)
	history := []domain.Payment{
		payment("P1", credit.CreditID, 990, domain.NewDate(2024, time.March, 4)),
		payment("P2", credit.CreditID, 110, domain.NewDate(2024, time.March, 11)),
	}

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(&credit, nil).Once()
	suite.paymentRepo.On("ListPaymentsByCreditID", ctx, credit.CreditID).Return(history, nil).Once()
	suite.expectSnapshot(ctx, "A")
	suite.clientRepo.On("UpsertClients", ctx, mock.AnythingOfType("[]domain.ClientMutation")).Return(nil).Once()

	client, muts, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{Status: strPtr("INACTIVE")}, "collector-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ClientInactive, client.Status)
	suite.Len(muts, 2)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestUpdateClient_DeactivationClosesGap() {
	ctx := context.Background()
	target := suite.clients[0]

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectSnapshot(ctx, "A")
	suite.clientRepo.On("UpsertClients", ctx, mock.AnythingOfType("[]domain.ClientMutation")).Return(nil).Once()

	client, muts, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{Status: strPtr("INACTIVE")}, "collector-2")

	suite.Require().NoError(err)
	suite.Equal(domain.ClientInactive, client.Status)
	suite.Equal("collector-2", client.LastUpdatedBy)
	suite.Require().Len(muts, 3)
	suite.Equal("A2", muts[0].Client.ClientID)
	suite.Equal(1, muts[0].Client.Order)
	suite.Equal("A3", muts[1].Client.ClientID)
	suite.Equal(2, muts[1].Client.Order)
	suite.Equal(target.ClientID, muts[2].Client.ClientID)
	for _, m := range muts {
		suite.Equal(testNow, m.Client.LastUpdatedAt)
	}
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestUpdateClient_RouteChangeAppendsToDestination() {
	ctx := context.Background()
	target := suite.clients[1]

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectSnapshot(ctx, "A", "B")
	suite.clientRepo.On("UpsertClients", ctx, mock.AnythingOfType("[]domain.ClientMutation")).Return(nil).Once()

	client, muts, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{RouteID: strPtr("B")}, "collector-1")

	suite.Require().NoError(err)
	suite.Equal("B", client.RouteID)
	suite.Equal(3, client.Order)
	suite.Require().Len(muts, 2)
	suite.Equal("A3", muts[0].Client.ClientID)
	suite.Equal(2, muts[0].Client.Order)
	last := muts[len(muts)-1]
	suite.Equal("A", last.PreviousRouteID)
	suite.Equal(2, last.PreviousOrder)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NoChange() {
	ctx := context.Background()
	target := suite.clients[2]

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectSnapshot(ctx, "A")

	client, muts, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{RouteID: strPtr("A"), Placement: "POSITION", Position: 3}, "collector-1")

	suite.Require().NoError(err)
	suite.Equal(target, *client)
	suite.Empty(muts)
	suite.clientRepo.AssertNotCalled(suite.T(), "UpsertClients", mock.Anything, mock.Anything)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestUpdateClient_PositionOutOfRange() {
	ctx := context.Background()
	target := suite.clients[0]

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectSnapshot(ctx, "A")

	_, _, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{Placement: "POSITION", Position: 9}, "collector-1")

	suite.ErrorIs(err, apperrors.ErrInvariantViolation)
	suite.clientRepo.AssertNotCalled(suite.T(), "UpsertClients", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NameIsImmutable() {
	ctx := context.Background()
	target := suite.clients[0]

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectSnapshot(ctx, "A")

	_, _, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{Name: strPtr("Renamed")}, "collector-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_WriteConflict() {
	ctx := context.Background()
	target := suite.clients[0]

	suite.expectClient(ctx, target)
	suite.creditRepo.On("FindActiveCreditByClientID", ctx, target.ClientID).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectSnapshot(ctx, "A")
	suite.clientRepo.On("UpsertClients", ctx, mock.Anything).Return(apperrors.ErrConflict).Once()

	client, muts, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{Placement: "END"}, "collector-1")

	suite.Nil(client)
	suite.Nil(muts)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestUpdateClient_ClientMovedWhileWaiting() {
	ctx := context.Background()
	target := suite.clients[1]
	// A concurrent edit moved A2 to route B before this one took the lock.
	suite.clients[1].RouteID = "B"

	suite.expectClient(ctx, target)
	suite.expectSnapshot(ctx, "A")

	client, muts, err := suite.service.UpdateClient(ctx, target.ClientID,
		dto.UpdateClientRequest{Placement: "END"}, "collector-1")

	suite.Nil(client)
	suite.Nil(muts)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.creditRepo.AssertNotCalled(suite.T(), "FindActiveCreditByClientID", mock.Anything, mock.Anything)
	suite.clientRepo.AssertNotCalled(suite.T(), "UpsertClients", mock.Anything, mock.Anything)
	suite.assertAll()
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NotFound() {
	ctx := context.Background()
	suite.clientRepo.On("FindClientByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.UpdateClient(ctx, "missing", dto.UpdateClientRequest{}, "collector-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
