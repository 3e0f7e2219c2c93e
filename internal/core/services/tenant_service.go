package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
)

// tenantService implements the TenantSvcFacade interface
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewTenantService creates a new tenant service with the provided dependencies
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, options ...ServiceOption) portssvc.TenantSvcFacade {
	return &tenantService{
		BaseService: newBaseService(options),
		tenantRepo:  tenantRepo,
	}
}

// Ensure tenantService implements the TenantSvcFacade interface
var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// FindTenantByID retrieves a tenant by its ID
func (s *tenantService) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tenant by ID",
				slog.String("tenant_id", tenantID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Tenant retrieved successfully",
		slog.String("tenant_id", tenant.TenantID))
	return tenant, nil
}

// ListUserTenants retrieves all tenants a user belongs to
func (s *tenantService) ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListTenantsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenants for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if tenants == nil {
		return []domain.Tenant{}, nil
	}

	s.LogDebug(ctx, "Tenants listed successfully",
		slog.Int("count", len(tenants)),
		slog.String("user_id", userID))
	return tenants, nil
}

// CreateTenant registers a company and makes its creator the first admin
func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("tenant name is required")
	}

	now := s.Now()
	tenant := domain.Tenant{
		TenantID:           s.NewID(),
		Name:               name,
		OrganisationNumber: strings.TrimSpace(req.OrganisationNumber),
		Description:        req.Description,
		IsActive:           true,
		AuditFields:        domain.NewAuditFields(creatorUserID, now),
	}
	creator := domain.TenantMember{
		UserID:   creatorUserID,
		TenantID: tenant.TenantID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant, creator); err != nil {
		s.LogError(ctx, err, "Failed to save tenant",
			slog.String("tenant_id", tenant.TenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant created successfully",
		slog.String("tenant_id", tenant.TenantID),
		slog.String("creator_id", creatorUserID))
	return &tenant, nil
}

// AddTenantMember adds a user to a tenant with a specific role
func (s *tenantService) AddTenantMember(ctx context.Context, addingUserID, tenantID string, req dto.AddTenantMemberRequest) (*domain.TenantMember, error) {
	if err := s.AuthorizeUserAction(ctx, addingUserID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("unknown role " + string(req.Role))
	}

	member := domain.TenantMember{
		UserID:   req.UserID,
		TenantID: tenantID,
		Role:     req.Role,
		JoinedAt: s.Now(),
	}
	if err := s.tenantRepo.AddTenantMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to add user to tenant",
			slog.String("target_user_id", req.UserID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "User added to tenant successfully",
		slog.String("target_user_id", req.UserID),
		slog.String("tenant_id", tenantID),
		slog.String("role", string(req.Role)))
	return &member, nil
}

// AuthorizeUserAction checks if a user has required permissions for a tenant
func (s *tenantService) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error {
	member, err := s.tenantRepo.FindTenantMember(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of tenant",
				slog.String("user_id", userID),
				slog.String("tenant_id", tenantID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find tenant membership",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return err
	}

	if !member.Role.Satisfies(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID),
			slog.String("user_role", string(member.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}
