package dto

import (
	"time"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines a collection against a credit. Date defaults to today.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Date   *domain.Date    `json:"date"`
	Note   string          `json:"note" binding:"max=500"`
}

// CorrectPaymentRequest defines the new amount of an existing payment.
type CorrectPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// ListPaymentsParams defines the query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	CreditID      string          `json:"creditID"`
	Date          domain.Date     `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note"`
	Voided        bool            `json:"voided"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		CreditID:      p.CreditID,
		Date:          p.Date,
		Amount:        p.Amount,
		Note:          p.Note,
		Voided:        p.Voided,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to a slice of PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// PaymentResultResponse is a written payment with the credit it was recomputed into.
type PaymentResultResponse struct {
	Payment PaymentResponse `json:"payment"`
	Credit  CreditResponse  `json:"credit"`
}

// ToPaymentResultResponse builds a PaymentResultResponse.
func ToPaymentResultResponse(p *domain.Payment, c *domain.Credit) PaymentResultResponse {
	return PaymentResultResponse{
		Payment: ToPaymentResponse(p),
		Credit:  ToCreditResponse(c),
	}
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}
