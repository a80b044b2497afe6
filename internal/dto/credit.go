package dto

import (
	"time"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// IssueCreditRequest defines the terms of a new credit.
type IssueCreditRequest struct {
	Capital           decimal.Decimal `json:"capital" binding:"required,gt=0"`
	TotalToPay        decimal.Decimal `json:"totalToPay" binding:"required,gt=0"`
	InstallmentValue  decimal.Decimal `json:"installmentValue" binding:"required,gt=0"`
	TotalInstallments int             `json:"totalInstallments" binding:"required,gt=0"`
	Frequency         string          `json:"frequency" binding:"required,oneof=DAILY WEEKLY BIWEEKLY MONTHLY"`
	StartDate         domain.Date     `json:"startDate" binding:"required"`
	FirstPaymentDate  domain.Date     `json:"firstPaymentDate" binding:"required"`
}

// ToTerms converts the request into ledger terms for clientID.
func (r IssueCreditRequest) ToTerms(clientID string) ledger.CreditTerms {
	return ledger.CreditTerms{
		ClientID:          clientID,
		Capital:           r.Capital,
		TotalToPay:        r.TotalToPay,
		InstallmentValue:  r.InstallmentValue,
		TotalInstallments: r.TotalInstallments,
		Frequency:         domain.Frequency(r.Frequency),
		StartDate:         r.StartDate,
		FirstPaymentDate:  r.FirstPaymentDate,
	}
}

// CreditResponse defines the data returned for a credit.
type CreditResponse struct {
	CreditID          string          `json:"creditID"`
	ClientID          string          `json:"clientID"`
	Capital           decimal.Decimal `json:"capital"`
	TotalToPay        decimal.Decimal `json:"totalToPay"`
	InstallmentValue  decimal.Decimal `json:"installmentValue"`
	TotalInstallments int             `json:"totalInstallments"`
	Frequency         string          `json:"frequency"`
	StartDate         domain.Date     `json:"startDate"`
	FirstPaymentDate  domain.Date     `json:"firstPaymentDate"`
	Status            string          `json:"status"`
	PaidInstallments  int             `json:"paidInstallments"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	Balance           decimal.Decimal `json:"balance"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy     string          `json:"lastUpdatedBy"`
}

// ToCreditResponse converts a domain.Credit to CreditResponse DTO
func ToCreditResponse(c *domain.Credit) CreditResponse {
	return CreditResponse{
		CreditID:          c.CreditID,
		ClientID:          c.ClientID,
		Capital:           c.Capital,
		TotalToPay:        c.TotalToPay,
		InstallmentValue:  c.InstallmentValue,
		TotalInstallments: c.TotalInstallments,
		Frequency:         string(c.Frequency),
		StartDate:         c.StartDate,
		FirstPaymentDate:  c.FirstPaymentDate,
		Status:            string(c.Status),
		PaidInstallments:  c.PaidInstallments,
		TotalPaid:         c.TotalPaid,
		Balance:           c.Balance(),
		CreatedAt:         c.CreatedAt,
		CreatedBy:         c.CreatedBy,
		LastUpdatedAt:     c.LastUpdatedAt,
		LastUpdatedBy:     c.LastUpdatedBy,
	}
}

// ToListCreditResponse converts a slice of domain.Credit to a slice of CreditResponse DTOs
func ToListCreditResponse(credits []domain.Credit) []CreditResponse {
	res := make([]CreditResponse, len(credits))
	for i := range credits {
		res[i] = ToCreditResponse(&credits[i])
	}
	return res
}

// CreditDetailResponse is a credit with its summary and installment schedule.
type CreditDetailResponse struct {
	Credit   CreditResponse       `json:"credit"`
	Summary  ledger.Summary       `json:"summary"`
	Schedule []ledger.Installment `json:"schedule"`
}

// ToCreditDetailResponse converts a ledger.Statement to CreditDetailResponse DTO
func ToCreditDetailResponse(st *ledger.Statement) CreditDetailResponse {
	return CreditDetailResponse{
		Credit:   ToCreditResponse(&st.Credit),
		Summary:  st.Summary,
		Schedule: st.Schedule,
	}
}
