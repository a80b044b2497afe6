package pgsql

import (
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RouteRepo:   newPgxRouteRepository(dbPool),
		ClientRepo:  newPgxClientRepository(dbPool),
		CreditRepo:  newPgxCreditRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool),
	}
}
