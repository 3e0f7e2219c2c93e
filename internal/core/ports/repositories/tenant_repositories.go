package repositories

import (
	"context"

	"github.com/SscSPs/share_register/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenantsByUserID retrieves all active tenants a user is a member of, ordered by name.
	ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// SaveTenant persists a new tenant and makes creator its first member, atomically.
	SaveTenant(ctx context.Context, tenant domain.Tenant, creator domain.TenantMember) error
}

// TenantMembershipManager defines operations for managing tenant memberships
type TenantMembershipManager interface {
	// AddTenantMember adds a user to a tenant, or changes the role of an existing member.
	AddTenantMember(ctx context.Context, member domain.TenantMember) error

	// FindTenantMember retrieves the membership of a user in a tenant.
	FindTenantMember(ctx context.Context, userID, tenantID string) (*domain.TenantMember, error)
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
	TenantMembershipManager
}

// TenantRepositoryWithTx extends TenantRepositoryFacade with transaction capabilities
type TenantRepositoryWithTx interface {
	TenantRepositoryFacade
	TransactionManager
}
