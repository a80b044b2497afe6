package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock domain.Clock
	NewID domain.IDGenerator
	Locks *KeyedMutex
	// Now stamps audit fields.
	Now func() time.Time
}

// ServiceOption is a functional option shared by every service constructor.
type ServiceOption func(*BaseService)

// WithClock sets the clock used to decide what "today" is.
func WithClock(clock domain.Clock) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithIDGenerator sets how identifiers of new records are produced.
func WithIDGenerator(gen domain.IDGenerator) ServiceOption {
	return func(s *BaseService) {
		s.NewID = gen
	}
}

// WithLocks shares one set of keyed locks between services, so that services
// touching the same route or credit serialize against each other.
func WithLocks(locks *KeyedMutex) ServiceOption {
	return func(s *BaseService) {
		s.Locks = locks
	}
}

// WithNow sets the timestamp source for audit fields.
func WithNow(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Now = now
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		Clock: domain.SystemClock{},
		NewID: domain.NewUUID,
		Now:   time.Now,
	}
	for _, option := range options {
		option(&base)
	}
	if base.Locks == nil {
		base.Locks = NewKeyedMutex()
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a rejected request that is not a server fault
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
