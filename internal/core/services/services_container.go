package services

import (
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extra ...ServiceOption) *portssvc.ServiceContainer {
	// Every service shares the same locks so a route edit and a payment on the
	// same client's credit see each other.
	options := []ServiceOption{
		WithLocks(NewKeyedMutex()),
		WithClock(domain.SystemClock{Location: cfg.Location}),
	}
	options = append(options, extra...)

	return &portssvc.ServiceContainer{
		Route:   NewRouteService(repos.RouteRepo, repos.ClientRepo, repos.CreditRepo, repos.PaymentRepo, options...),
		Client:  NewClientService(repos.RouteRepo, repos.ClientRepo, repos.CreditRepo, repos.PaymentRepo, options...),
		Credit:  NewCreditService(repos.ClientRepo, repos.CreditRepo, repos.PaymentRepo, options...),
		Payment: NewPaymentService(repos.CreditRepo, repos.PaymentRepo, options...),
	}
}
