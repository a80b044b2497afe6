package repositories

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
)

// CreditReader defines read operations for credit data
type CreditReader interface {
	// FindCreditByID retrieves a specific credit by its ID.
	FindCreditByID(ctx context.Context, creditID string) (*domain.Credit, error)

	// FindActiveCreditByClientID retrieves the client's Active credit.
	// It returns ErrNotFound when the client has none.
	FindActiveCreditByClientID(ctx context.Context, clientID string) (*domain.Credit, error)

	// ListCreditsByClientID retrieves all credits of a client, newest first.
	ListCreditsByClientID(ctx context.Context, clientID string) ([]domain.Credit, error)

	// ListActiveCreditsByRouteID retrieves the Active credits of clients on a route.
	ListActiveCreditsByRouteID(ctx context.Context, routeID string) ([]domain.Credit, error)
}

// CreditWriter defines write operations for credit data
type CreditWriter interface {
	// SaveCredit persists a new credit.
	SaveCredit(ctx context.Context, credit domain.Credit) error

	// UpdateCredit writes the status and running totals of a credit.
	UpdateCredit(ctx context.Context, credit domain.Credit) error
}

// CreditRepositoryFacade combines all credit-related repository interfaces
type CreditRepositoryFacade interface {
	CreditReader
	CreditWriter
}
