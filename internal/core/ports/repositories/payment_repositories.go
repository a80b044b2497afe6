package repositories

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByCreditID retrieves the full payment history of a credit, voided ones included.
	ListPaymentsByCreditID(ctx context.Context, creditID string) ([]domain.Payment, error)

	// ListPaymentsByCreditIDs retrieves the histories of several credits, grouped by credit ID.
	ListPaymentsByCreditIDs(ctx context.Context, creditIDs []string) (map[string][]domain.Payment, error)

	// ListPaymentsPage retrieves payments of a credit newest first using token-based pagination.
	// It returns the payments, a token for the next page, and an error.
	ListPaymentsPage(ctx context.Context, creditID string, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// PaymentWriter defines write operations for payment data. Every write also
// stores the recomputed credit in the same transaction.
type PaymentWriter interface {
	// SavePayment inserts a new payment and updates its credit.
	SavePayment(ctx context.Context, payment domain.Payment, credit domain.Credit) error

	// UpdatePayment rewrites an amended (corrected or voided) payment and updates its credit.
	UpdatePayment(ctx context.Context, payment domain.Payment, credit domain.Credit) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
