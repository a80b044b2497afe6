package services

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/SscSPs/route_lending_app/internal/dto"
)

// CreditReaderSvc defines read operations for credit data
type CreditReaderSvc interface {
	// GetCreditStatement retrieves a credit with its summary and schedule as of today.
	GetCreditStatement(ctx context.Context, creditID string) (*ledger.Statement, error)

	// ListClientCredits retrieves every credit issued to a client.
	ListClientCredits(ctx context.Context, clientID string) ([]domain.Credit, error)
}

// CreditWriterSvc defines write operations for credit data
type CreditWriterSvc interface {
	// IssueCredit creates a new Active credit for an Active client with no other Active credit.
	IssueCredit(ctx context.Context, clientID string, req dto.IssueCreditRequest, creatorUserID string) (*domain.Credit, error)

	// MarkCreditLost moves an Active credit to Lost.
	MarkCreditLost(ctx context.Context, creditID string, userID string) (*domain.Credit, error)
}

// CreditSvcFacade combines all credit-related service interfaces
type CreditSvcFacade interface {
	CreditReaderSvc
	CreditWriterSvc
}
