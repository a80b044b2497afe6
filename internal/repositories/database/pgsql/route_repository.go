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

const routeColumns = `route_id, name, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxRouteRepository struct {
	BaseRepository
}

func newPgxRouteRepository(pool *pgxpool.Pool) portsrepo.RouteRepositoryFacade {
	return &PgxRouteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RouteRepositoryFacade = (*PgxRouteRepository)(nil)

// SaveRoute inserts a new route.
func (r *PgxRouteRepository) SaveRoute(ctx context.Context, route domain.Route) error {
	m := mapping.ToModelRoute(route)
	query := `
		INSERT INTO routes (` + routeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RouteID, m.Name, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "route "+m.RouteID)
	}
	return nil
}

// FindRouteByID retrieves a route by its ID.
func (r *PgxRouteRepository) FindRouteByID(ctx context.Context, routeID string) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE route_id = $1;`
	m, err := scanRoute(r.Pool.QueryRow(ctx, query, routeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find route by ID "+routeID, err)
	}
	route := mapping.ToDomainRoute(m)
	return &route, nil
}

// FindRoutesByIDs retrieves the routes that exist among routeIDs.
func (r *PgxRouteRepository) FindRoutesByIDs(ctx context.Context, routeIDs []string) ([]domain.Route, error) {
	if len(routeIDs) == 0 {
		return []domain.Route{}, nil
	}
	query := `SELECT ` + routeColumns + ` FROM routes WHERE route_id = ANY($1);`
	return r.queryRoutes(ctx, query, routeIDs)
}

// ListRoutes retrieves all routes ordered by name.
func (r *PgxRouteRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes ORDER BY name, route_id;`
	return r.queryRoutes(ctx, query)
}

func (r *PgxRouteRepository) queryRoutes(ctx context.Context, query string, args ...any) ([]domain.Route, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query routes", err)
	}
	defer rows.Close()

	routes := []models.Route{}
	for rows.Next() {
		m, err := scanRoute(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan route row", err)
		}
		routes = append(routes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating route rows", err)
	}
	return mapping.ToDomainRouteSlice(routes), nil
}

func scanRoute(row pgx.Row) (models.Route, error) {
	var m models.Route
	err := row.Scan(
		&m.RouteID,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
