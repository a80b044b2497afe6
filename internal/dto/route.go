package dto

import (
	"time"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// CreateRouteRequest defines the data needed to create a new route.
type CreateRouteRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=500"`
}

// RouteResponse defines the data returned for a route.
type RouteResponse struct {
	RouteID       string    `json:"routeID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToRouteResponse converts a domain.Route to RouteResponse DTO
func ToRouteResponse(r *domain.Route) RouteResponse {
	return RouteResponse{
		RouteID:       r.RouteID,
		Name:          r.Name,
		Description:   r.Description,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListRouteResponse converts a slice of domain.Route to a slice of RouteResponse DTOs
func ToListRouteResponse(routes []domain.Route) []RouteResponse {
	res := make([]RouteResponse, len(routes))
	for i := range routes {
		res[i] = ToRouteResponse(&routes[i])
	}
	return res
}

// RouteVerificationResponse reports whether a route's active clients are ordered 1..N.
type RouteVerificationResponse struct {
	RouteID    string `json:"routeID"`
	Consistent bool   `json:"consistent"`
	Problem    string `json:"problem,omitempty"`
}

// NormalizeRouteResponse lists the client records rewritten to repair a route.
type NormalizeRouteResponse struct {
	RouteID string                   `json:"routeID"`
	Changed []ClientMutationResponse `json:"changed"`
}

// StandingResponse is one row of a route's collection view.
type StandingResponse struct {
	ClientID           string           `json:"clientID"`
	ClientName         string           `json:"clientName"`
	Alias              string           `json:"alias,omitempty"`
	Order              int              `json:"order"`
	CreditID           string           `json:"creditID,omitempty"`
	Balance            *decimal.Decimal `json:"balance,omitempty"`
	InstallmentValue   *decimal.Decimal `json:"installmentValue,omitempty"`
	InstallmentsBehind int              `json:"installmentsBehind"`
	AmountBehind       *decimal.Decimal `json:"amountBehind,omitempty"`
	IsOverdue          bool             `json:"isOverdue"`
	NextDueDate        *domain.Date     `json:"nextDueDate,omitempty"`
}

// ToStandingResponse converts a ledger.Standing to StandingResponse DTO
func ToStandingResponse(s ledger.Standing) StandingResponse {
	res := StandingResponse{
		ClientID:   s.Client.ClientID,
		ClientName: s.Client.Name,
		Alias:      s.Client.Alias,
		Order:      s.Client.Order,
	}
	if s.Credit == nil || s.Summary == nil {
		return res
	}
	res.CreditID = s.Credit.CreditID
	res.Balance = &s.Summary.Balance
	res.InstallmentValue = &s.Credit.InstallmentValue
	res.InstallmentsBehind = s.Summary.InstallmentsBehind
	res.AmountBehind = &s.Summary.AmountBehind
	res.IsOverdue = s.Summary.IsOverdue
	res.NextDueDate = s.Summary.NextDueDate
	return res
}

// ToListStandingResponse converts standings to their DTOs, keeping order.
func ToListStandingResponse(standings []ledger.Standing) []StandingResponse {
	res := make([]StandingResponse, len(standings))
	for i, s := range standings {
		res[i] = ToStandingResponse(s)
	}
	return res
}
