package services

import (
	"context"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// ListPayments retrieves a page of a credit's payments, newest first.
	ListPayments(ctx context.Context, creditID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// PaymentWriterSvc defines write operations for payment data. Each returns the
// written payment and the credit recomputed from its full history.
type PaymentWriterSvc interface {
	// RecordPayment applies a new payment to an Active credit.
	RecordPayment(ctx context.Context, creditID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, *domain.Credit, error)

	// CorrectPayment changes the amount of an existing payment.
	CorrectPayment(ctx context.Context, paymentID string, req dto.CorrectPaymentRequest, userID string) (*domain.Payment, *domain.Credit, error)

	// VoidPayment excludes a payment from its credit's totals.
	VoidPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, *domain.Credit, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
