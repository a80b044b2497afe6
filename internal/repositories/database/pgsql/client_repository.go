package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	portsrepo "github.com/SscSPs/route_lending_app/internal/core/ports/repositories"
	"github.com/SscSPs/route_lending_app/internal/models"
	"github.com/SscSPs/route_lending_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `client_id, route_id, identification_number, name, alias, address, phone,
	route_order, status, latitude, longitude, created_at, created_by, last_updated_at, last_updated_by`

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryWithTx {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryWithTx = (*PgxClientRepository)(nil)

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	return r.findOne(ctx, query, clientID)
}

// FindClientByIdentificationNumber retrieves the client holding an identification number.
func (r *PgxClientRepository) FindClientByIdentificationNumber(ctx context.Context, identificationNumber string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE identification_number = $1;`
	return r.findOne(ctx, query, identificationNumber)
}

// ListClientsByRouteIDs retrieves every client on any of routeIDs, ordered by route and order.
func (r *PgxClientRepository) ListClientsByRouteIDs(ctx context.Context, routeIDs []string) ([]domain.Client, error) {
	if len(routeIDs) == 0 {
		return []domain.Client{}, nil
	}
	query := `SELECT ` + clientColumns + `
		FROM clients
		WHERE route_id = ANY($1)
		ORDER BY route_id, route_order, created_at;`

	rows, err := r.Pool.Query(ctx, query, routeIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client row", err)
		}
		clients = append(clients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating client rows", err)
	}
	return mapping.ToDomainClientSlice(clients), nil
}

// UpsertClients writes a mutation batch in one transaction. Updates carry the
// route and order the caller read; a row that no longer matches aborts the
// whole batch with ErrConflict.
func (r *PgxClientRepository) UpsertClients(ctx context.Context, mutations []domain.ClientMutation) error {
	if len(mutations) == 0 {
		return nil
	}

	insertQuery := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	updateQuery := `
		UPDATE clients
		SET route_id = $2, alias = $3, address = $4, phone = $5, route_order = $6, status = $7,
		    latitude = $8, longitude = $9, last_updated_at = $10, last_updated_by = $11
		WHERE client_id = $1 AND route_id = $12 AND route_order = $13;
	`

	return r.inTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, mut := range mutations {
			m := mapping.ToModelClient(mut.Client)
			if mut.PreviousRouteID == "" {
				batch.Queue(insertQuery,
					m.ClientID, m.RouteID, m.IdentificationNumber, m.Name, m.Alias, m.Address, m.Phone,
					m.RouteOrder, m.Status, m.Latitude, m.Longitude,
					m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
				)
				continue
			}
			batch.Queue(updateQuery,
				m.ClientID, m.RouteID, m.Alias, m.Address, m.Phone, m.RouteOrder, m.Status,
				m.Latitude, m.Longitude, m.LastUpdatedAt, m.LastUpdatedBy,
				mut.PreviousRouteID, mut.PreviousOrder,
			)
		}

		br := tx.SendBatch(ctx, batch)
		for _, mut := range mutations {
			tag, err := br.Exec()
			if err != nil {
				br.Close()
				return mapWriteError(err, "client "+mut.Client.ClientID)
			}
			if mut.PreviousRouteID != "" && tag.RowsAffected() != 1 {
				br.Close()
				return fmt.Errorf("%w: client %s is no longer at order %d on route %s",
					apperrors.ErrConflict, mut.Client.ClientID, mut.PreviousOrder, mut.PreviousRouteID)
			}
		}
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to execute client batch", err)
		}
		return nil
	})
}

func (r *PgxClientRepository) findOne(ctx context.Context, query string, arg string) (*domain.Client, error) {
	m, err := scanClient(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find client "+arg, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.RouteID,
		&m.IdentificationNumber,
		&m.Name,
		&m.Alias,
		&m.Address,
		&m.Phone,
		&m.RouteOrder,
		&m.Status,
		&m.Latitude,
		&m.Longitude,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
