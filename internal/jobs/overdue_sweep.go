package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// RouteReporter is the part of the route service the sweep needs.
type RouteReporter interface {
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	OverdueReport(ctx context.Context, routeID string) ([]ledger.Standing, error)
}

// SweepResult totals one pass over every route.
type SweepResult struct {
	Routes       int
	OverdueCount int
	AmountBehind decimal.Decimal
	FailedRoutes []string
}

// OverdueSweep logs each route's overdue credits on a cron schedule. Nothing
// is persisted: overdue state is derived at read time.
type OverdueSweep struct {
	routes  RouteReporter
	logger  *slog.Logger
	cron    *cron.Cron
	loc     *time.Location
	timeout time.Duration
}

// NewOverdueSweep schedules the sweep with a standard five-field cron spec
// evaluated in loc.
func NewOverdueSweep(routes RouteReporter, logger *slog.Logger, schedule string, loc *time.Location) (*OverdueSweep, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := &OverdueSweep{
		routes:  routes,
		logger:  logger.With(slog.String("job", "overdue_sweep")),
		cron:    cron.New(cron.WithLocation(loc)),
		loc:     loc,
		timeout: 5 * time.Minute,
	}
	if _, err := s.cron.AddFunc(schedule, s.runScheduled); err != nil {
		return nil, fmt.Errorf("invalid overdue sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *OverdueSweep) Start() {
	s.logger.Info("Overdue sweep scheduled", slog.Time("next_run", s.NextRun()))
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running sweep to finish or ctx to end.
func (s *OverdueSweep) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Overdue sweep still running at shutdown")
	}
}

// NextRun reports when the sweep fires next.
func (s *OverdueSweep) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now().In(s.loc))
}

func (s *OverdueSweep) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.Run(ctx); err != nil {
		s.logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
	}
}

// Run sweeps every route once. A route whose report fails is logged and
// skipped; only failing to list routes aborts the sweep.
func (s *OverdueSweep) Run(ctx context.Context) (SweepResult, error) {
	res := SweepResult{AmountBehind: decimal.Zero}

	routes, err := s.routes.ListRoutes(ctx)
	if err != nil {
		return res, fmt.Errorf("list routes: %w", err)
	}

	for _, r := range routes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		standings, err := s.routes.OverdueReport(ctx, r.RouteID)
		if err != nil {
			s.logger.Error("Failed to build overdue report",
				slog.String("route_id", r.RouteID), slog.String("error", err.Error()))
			res.FailedRoutes = append(res.FailedRoutes, r.RouteID)
			continue
		}
		res.Routes++

		behind := decimal.Zero
		for _, st := range standings {
			if st.Summary == nil {
				continue
			}
			behind = behind.Add(st.Summary.AmountBehind)
			s.logger.Debug("Overdue credit",
				slog.String("route_id", r.RouteID),
				slog.String("client_id", st.Client.ClientID),
				slog.Int("order", st.Client.Order),
				slog.Int("installments_behind", st.Summary.InstallmentsBehind))
		}
		res.OverdueCount += len(standings)
		res.AmountBehind = res.AmountBehind.Add(behind)

		s.logger.Info("Route overdue summary",
			slog.String("route_id", r.RouteID),
			slog.String("route_name", r.Name),
			slog.Int("overdue_clients", len(standings)),
			slog.String("amount_behind", behind.StringFixed(2)))
	}

	s.logger.Info("Overdue sweep finished",
		slog.Int("routes", res.Routes),
		slog.Int("overdue_clients", res.OverdueCount),
		slog.Int("failed_routes", len(res.FailedRoutes)))
	return res, nil
}
