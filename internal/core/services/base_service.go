package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	TenantAuthorizer portssvc.TenantAuthorizerSvc
	Clock            func() time.Time
	IDGenerator      func() string
}

// ServiceOption is a functional option shared by all services
type ServiceOption func(*BaseService)

// WithTenantAuthorizer adds the tenant authorizer dependency
func WithTenantAuthorizer(authorizer portssvc.TenantAuthorizerSvc) ServiceOption {
	return func(s *BaseService) {
		s.TenantAuthorizer = authorizer
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithIDGenerator replaces uuid.NewString, mainly for tests
func WithIDGenerator(gen func() string) ServiceOption {
	return func(s *BaseService) {
		s.IDGenerator = gen
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time of the service clock
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// NewID returns a fresh opaque identifier
func (s *BaseService) NewID() string {
	if s.IDGenerator != nil {
		return s.IDGenerator()
	}
	return uuid.NewString()
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

// LogWarn logs a rejected request, e.g. a validation failure
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

// AuthorizeUser checks if a user has the required role for a tenant
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error {
	if s.TenantAuthorizer != nil {
		return s.TenantAuthorizer.AuthorizeUserAction(ctx, userID, tenantID, requiredRole)
	}
	s.LogDebug(ctx, "No tenant authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("tenant_id", tenantID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
