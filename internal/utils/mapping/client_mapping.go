package mapping

import (
	"database/sql"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	m := models.Client{
		ClientID:             d.ClientID,
		RouteID:              d.RouteID,
		IdentificationNumber: d.IdentificationNumber,
		Name:                 d.Name,
		Alias:                d.Alias,
		Address:              d.Address,
		Phone:                d.Phone,
		RouteOrder:           d.Order,
		Status:               string(d.Status),
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
	if d.Location != nil {
		m.Latitude = sql.NullFloat64{Float64: d.Location.Latitude, Valid: true}
		m.Longitude = sql.NullFloat64{Float64: d.Location.Longitude, Valid: true}
	}
	return m
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	d := domain.Client{
		ClientID:             m.ClientID,
		RouteID:              m.RouteID,
		IdentificationNumber: m.IdentificationNumber,
		Name:                 m.Name,
		Alias:                m.Alias,
		Address:              m.Address,
		Phone:                m.Phone,
		Order:                m.RouteOrder,
		Status:               domain.ClientStatus(m.Status),
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
	if m.Latitude.Valid && m.Longitude.Valid {
		d.Location = &domain.GeoPoint{Latitude: m.Latitude.Float64, Longitude: m.Longitude.Float64}
	}
	return d
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
