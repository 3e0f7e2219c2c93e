package services

import (
	"context"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/dto"
)

// TenantReaderSvc defines read operations for tenant data
type TenantReaderSvc interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListUserTenants retrieves the tenants a user belongs to.
	ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error)
}

// TenantWriterSvc defines write operations for tenant data
type TenantWriterSvc interface {
	// CreateTenant registers a company; its creator becomes ADMIN.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)
}

// TenantMembershipSvc defines operations for managing tenant membership
type TenantMembershipSvc interface {
	// AddTenantMember adds a user to a tenant with a role. Only tenant admins can add members.
	AddTenantMember(ctx context.Context, addingUserID, tenantID string, req dto.AddTenantMemberRequest) (*domain.TenantMember, error)
}

// TenantAuthorizerSvc defines operations for tenant authorization
type TenantAuthorizerSvc interface {
	// AuthorizeUserAction checks whether a user holds requiredRole (or a higher one) in a tenant.
	// Non-members get apperrors.ErrForbidden.
	AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error
}

// TenantSvcFacade combines all tenant-related service interfaces
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
	TenantMembershipSvc
	TenantAuthorizerSvc
}
