package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
	"github.com/SscSPs/route_lending_app/internal/models"
	"github.com/SscSPs/route_lending_app/internal/utils/mapping"
	"github.com/SscSPs/route_lending_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `payment_id, credit_id, payment_date, amount, note, voided,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

// SavePayment inserts a payment and stores the recomputed credit in one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, credit domain.Credit) error {
	p := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	return r.writeWithCredit(ctx, credit, "payment "+p.PaymentID, func(batch *pgx.Batch) {
		batch.Queue(query,
			p.PaymentID, p.CreditID, p.PaymentDate, p.Amount, p.Note, p.Voided,
			p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
		)
	})
}

// UpdatePayment rewrites an amended payment and stores the recomputed credit in one transaction.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, credit domain.Credit) error {
	p := mapping.ToModelPayment(payment)
	query := `
		UPDATE payments
		SET amount = $2, voided = $3, last_updated_at = $4, last_updated_by = $5
		WHERE payment_id = $1;
	`
	return r.writeWithCredit(ctx, credit, "payment "+p.PaymentID, func(batch *pgx.Batch) {
		batch.Queue(query, p.PaymentID, p.Amount, p.Voided, p.LastUpdatedAt, p.LastUpdatedBy)
	})
}

func (r *PgxPaymentRepository) writeWithCredit(ctx context.Context, credit domain.Credit, what string, queue func(*pgx.Batch)) error {
	c := mapping.ToModelCredit(credit)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		queue(batch)
		batch.Queue(updateCreditTotalsQuery,
			c.CreditID, c.Status, c.PaidInstallments, c.TotalPaid, c.LastUpdatedAt, c.LastUpdatedBy)

		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			tag, err := br.Exec()
			if err != nil {
				br.Close()
				return mapWriteError(err, what)
			}
			if tag.RowsAffected() != 1 {
				br.Close()
				return fmt.Errorf("%w: %s or credit %s", apperrors.ErrNotFound, what, c.CreditID)
			}
		}
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to execute payment batch", err)
		}
		return nil
	})
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPaymentsByCreditID retrieves the full history of a credit in the order it was collected.
func (r *PgxPaymentRepository) ListPaymentsByCreditID(ctx context.Context, creditID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE credit_id = $1
		ORDER BY payment_date, created_at, payment_id;`
	payments, err := r.queryPayments(ctx, query, creditID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}

// ListPaymentsByCreditIDs retrieves the histories of several credits grouped by credit.
func (r *PgxPaymentRepository) ListPaymentsByCreditIDs(ctx context.Context, creditIDs []string) (map[string][]domain.Payment, error) {
	out := make(map[string][]domain.Payment, len(creditIDs))
	if len(creditIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE credit_id = ANY($1)
		ORDER BY credit_id, payment_date, created_at, payment_id;`
	payments, err := r.queryPayments(ctx, query, creditIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range payments {
		out[m.CreditID] = append(out[m.CreditID], mapping.ToDomainPayment(m))
	}
	return out, nil
}

// ListPaymentsPage retrieves payments of a credit newest first using token-based pagination.
func (r *PgxPaymentRepository) ListPaymentsPage(ctx context.Context, creditID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE credit_id = $1`
	// Ordering must be stable; payment_id breaks ties on identical timestamps.
	orderByClause := `ORDER BY payment_date DESC, created_at DESC, payment_id DESC`
	args := []any{creditID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken",
				fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (payment_date, created_at, payment_id) < ($2, $3, $4)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	payments, err := r.queryPayments(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(payments) > limit {
		last := payments[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			Date:      last.PaymentDate,
			CreatedAt: last.CreatedAt,
			ID:        last.PaymentID,
		})
		next = &token
		payments = payments[:limit]
	}
	return mapping.ToDomainPaymentSlice(payments), next, nil
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]models.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.CreditID,
		&m.PaymentDate,
		&m.Amount,
		&m.Note,
		&m.Voided,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
