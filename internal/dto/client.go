package dto

import (
	"time"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
)

// GeoPointRequest is an optional client location.
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
}

// ToDomain converts the request location, nil when absent.
func (g *GeoPointRequest) ToDomain() *domain.GeoPoint {
	if g == nil {
		return nil
	}
	return &domain.GeoPoint{Latitude: g.Latitude, Longitude: g.Longitude}
}

// EnrollClientRequest defines the data needed to enroll a client on a route.
// New clients are always placed at the end of the route.
type EnrollClientRequest struct {
	RouteID              string           `json:"routeID" binding:"required"`
	IdentificationNumber string           `json:"identificationNumber" binding:"required,max=40"`
	Name                 string           `json:"name" binding:"required,max=160"`
	Alias                string           `json:"alias" binding:"max=80"`
	Address              string           `json:"address" binding:"max=240"`
	Phone                string           `json:"phone" binding:"max=40"`
	Location             *GeoPointRequest `json:"location"`
}

// UpdateClientRequest defines the editable fields of a client. Omitted fields
// keep their current value. Name and identification number cannot change; they
// are accepted only so that a full record can be sent back unchanged.
type UpdateClientRequest struct {
	IdentificationNumber *string          `json:"identificationNumber"`
	Name                 *string          `json:"name"`
	RouteID              *string          `json:"routeID"`
	Alias                *string          `json:"alias" binding:"omitempty,max=80"`
	Address              *string          `json:"address" binding:"omitempty,max=240"`
	Phone                *string          `json:"phone" binding:"omitempty,max=40"`
	Status               *string          `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Location             *GeoPointRequest `json:"location"`
	// Placement is KEEP (default), END or POSITION.
	Placement string `json:"placement" binding:"omitempty,oneof=KEEP END POSITION"`
	Position  int    `json:"position" binding:"omitempty,min=1"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID             string           `json:"clientID"`
	RouteID              string           `json:"routeID"`
	IdentificationNumber string           `json:"identificationNumber"`
	Name                 string           `json:"name"`
	Alias                string           `json:"alias"`
	Address              string           `json:"address"`
	Phone                string           `json:"phone"`
	Order                int              `json:"order"`
	Status               string           `json:"status"`
	Location             *domain.GeoPoint `json:"location,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
	CreatedBy            string           `json:"createdBy"`
	LastUpdatedAt        time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy        string           `json:"lastUpdatedBy"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:             c.ClientID,
		RouteID:              c.RouteID,
		IdentificationNumber: c.IdentificationNumber,
		Name:                 c.Name,
		Alias:                c.Alias,
		Address:              c.Address,
		Phone:                c.Phone,
		Order:                c.Order,
		Status:               string(c.Status),
		Location:             c.Location,
		CreatedAt:            c.CreatedAt,
		CreatedBy:            c.CreatedBy,
		LastUpdatedAt:        c.LastUpdatedAt,
		LastUpdatedBy:        c.LastUpdatedBy,
	}
}

// ToListClientResponse converts a slice of domain.Client to a slice of ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}

// ClientMutationResponse is one client record rewritten by an edit.
type ClientMutationResponse struct {
	ClientID        string `json:"clientID"`
	RouteID         string `json:"routeID"`
	Order           int    `json:"order"`
	Status          string `json:"status"`
	PreviousRouteID string `json:"previousRouteID"`
	PreviousOrder   int    `json:"previousOrder"`
}

// ToClientMutationResponses converts a mutation batch to DTOs.
func ToClientMutationResponses(muts []domain.ClientMutation) []ClientMutationResponse {
	res := make([]ClientMutationResponse, len(muts))
	for i, m := range muts {
		res[i] = ClientMutationResponse{
			ClientID:        m.Client.ClientID,
			RouteID:         m.Client.RouteID,
			Order:           m.Client.Order,
			Status:          string(m.Client.Status),
			PreviousRouteID: m.PreviousRouteID,
			PreviousOrder:   m.PreviousOrder,
		}
	}
	return res
}

// UpdateClientResponse returns the edited client and every record the edit rewrote.
type UpdateClientResponse struct {
	Client    ClientResponse           `json:"client"`
	Mutations []ClientMutationResponse `json:"mutations"`
}
