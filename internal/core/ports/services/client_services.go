package services

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// EnrollClient creates a client at the end of its route.
	EnrollClient(ctx context.Context, req dto.EnrollClientRequest, creatorUserID string) (*domain.Client, error)

	// UpdateClient applies an edit, reconciling route ordering and the
	// deactivation rule. It returns the edited client and every record written.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, []domain.ClientMutation, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
