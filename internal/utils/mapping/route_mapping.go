package mapping

import (
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/models"
)

// ToModelRoute converts a domain Route to a model Route
func ToModelRoute(d domain.Route) models.Route {
	return models.Route{
		RouteID:     d.RouteID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoute converts a model Route to a domain Route
func ToDomainRoute(m models.Route) domain.Route {
	return domain.Route{
		RouteID:     m.RouteID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRouteSlice converts a slice of model Routes to a slice of domain Routes
func ToDomainRouteSlice(ms []models.Route) []domain.Route {
	ds := make([]domain.Route, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoute(m)
	}
	return ds
}
