package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
	"github.com/SscSPs/route_lending_app/internal/models"
	"github.com/SscSPs/route_lending_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const creditColumns = `cr.credit_id, cr.client_id, cr.capital, cr.total_to_pay, cr.installment_value,
	cr.total_installments, cr.frequency, cr.start_date, cr.first_payment_date, cr.status,
	cr.paid_installments, cr.total_paid, cr.created_at, cr.created_by, cr.last_updated_at, cr.last_updated_by`

// updateCreditTotalsQuery writes the recomputed part of a credit.
const updateCreditTotalsQuery = `
	UPDATE credits
	SET status = $2, paid_installments = $3, total_paid = $4, last_updated_at = $5, last_updated_by = $6
	WHERE credit_id = $1;
`

type PgxCreditRepository struct {
	BaseRepository
}

func newPgxCreditRepository(pool *pgxpool.Pool) portsrepo.CreditRepositoryFacade {
	return &PgxCreditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CreditRepositoryFacade = (*PgxCreditRepository)(nil)

// SaveCredit inserts a new credit. The one-active-credit-per-client index
// turns a concurrent second issuance into ErrDuplicate.
func (r *PgxCreditRepository) SaveCredit(ctx context.Context, credit domain.Credit) error {
	m := mapping.ToModelCredit(credit)
	query := `
		INSERT INTO credits (
			credit_id, client_id, capital, total_to_pay, installment_value, total_installments,
			frequency, start_date, first_payment_date, status, paid_installments, total_paid,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CreditID, m.ClientID, m.Capital, m.TotalToPay, m.InstallmentValue, m.TotalInstallments,
		m.Frequency, m.StartDate, m.FirstPaymentDate, m.Status, m.PaidInstallments, m.TotalPaid,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "credit "+m.CreditID)
	}
	return nil
}

// UpdateCredit writes the status and running totals of a credit.
func (r *PgxCreditRepository) UpdateCredit(ctx context.Context, credit domain.Credit) error {
	m := mapping.ToModelCredit(credit)
	tag, err := r.Pool.Exec(ctx, updateCreditTotalsQuery,
		m.CreditID, m.Status, m.PaidInstallments, m.TotalPaid, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, "credit "+m.CreditID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCreditByID retrieves a credit by its ID.
func (r *PgxCreditRepository) FindCreditByID(ctx context.Context, creditID string) (*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits cr WHERE cr.credit_id = $1;`
	return r.findOne(ctx, query, creditID)
}

// FindActiveCreditByClientID retrieves the client's Active credit.
func (r *PgxCreditRepository) FindActiveCreditByClientID(ctx context.Context, clientID string) (*domain.Credit, error) {
	query := `SELECT ` + creditColumns + `
		FROM credits cr
		WHERE cr.client_id = $1 AND cr.status = 'ACTIVE'
		ORDER BY cr.created_at DESC
		LIMIT 1;`
	return r.findOne(ctx, query, clientID)
}

// ListCreditsByClientID retrieves all credits of a client, newest first.
func (r *PgxCreditRepository) ListCreditsByClientID(ctx context.Context, clientID string) ([]domain.Credit, error) {
	query := `SELECT ` + creditColumns + `
		FROM credits cr
		WHERE cr.client_id = $1
		ORDER BY cr.start_date DESC, cr.created_at DESC;`
	return r.queryCredits(ctx, query, clientID)
}

// ListActiveCreditsByRouteID retrieves the Active credits of clients currently on a route.
func (r *PgxCreditRepository) ListActiveCreditsByRouteID(ctx context.Context, routeID string) ([]domain.Credit, error) {
	query := `SELECT ` + creditColumns + `
		FROM credits cr
		JOIN clients c ON c.client_id = cr.client_id
		WHERE c.route_id = $1 AND cr.status = 'ACTIVE'
		ORDER BY c.route_order;`
	return r.queryCredits(ctx, query, routeID)
}

func (r *PgxCreditRepository) findOne(ctx context.Context, query string, arg string) (*domain.Credit, error) {
	m, err := scanCredit(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find credit for "+arg, err)
	}
	credit := mapping.ToDomainCredit(m)
	return &credit, nil
}

func (r *PgxCreditRepository) queryCredits(ctx context.Context, query string, args ...any) ([]domain.Credit, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query credits", err)
	}
	defer rows.Close()

	credits := []models.Credit{}
	for rows.Next() {
		m, err := scanCredit(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan credit row", err)
		}
		credits = append(credits, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating credit rows", err)
	}
	return mapping.ToDomainCreditSlice(credits), nil
}

func scanCredit(row pgx.Row) (models.Credit, error) {
	var m models.Credit
	err := row.Scan(
		&m.CreditID,
		&m.ClientID,
		&m.Capital,
		&m.TotalToPay,
		&m.InstallmentValue,
		&m.TotalInstallments,
		&m.Frequency,
		&m.StartDate,
		&m.FirstPaymentDate,
		&m.Status,
		&m.PaidInstallments,
		&m.TotalPaid,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
