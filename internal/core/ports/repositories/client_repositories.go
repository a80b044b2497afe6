package repositories

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by its ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByIdentificationNumber retrieves the client holding an identification number.
	FindClientByIdentificationNumber(ctx context.Context, identificationNumber string) (*domain.Client, error)

	// ListClientsByRouteIDs retrieves every client, active or not, assigned to any of routeIDs.
	ListClientsByRouteIDs(ctx context.Context, routeIDs []string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// UpsertClients writes a mutation batch in one transaction. A mutation
	// with an empty PreviousRouteID inserts a new client; any other mutation
	// only applies if the stored client still has its PreviousRouteID and
	// PreviousOrder. When one does not apply nothing is written and
	// ErrConflict is returned.
	UpsertClients(ctx context.Context, mutations []domain.ClientMutation) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

// ClientRepositoryWithTx extends ClientRepositoryFacade with transaction capabilities
type ClientRepositoryWithTx interface {
	ClientRepositoryFacade
	TransactionManager
}
