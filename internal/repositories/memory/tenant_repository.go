package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
)

type tenantRepository struct {
	*store
}

var _ portsrepo.TenantRepositoryFacade = (*tenantRepository)(nil)

func (r *tenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tenant, ok := r.tenants[tenantID]
	if !ok {
		return nil, apperrors.NewNotFoundError("tenant")
	}
	return &tenant, nil
}

func (r *tenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tenants := []domain.Tenant{}
	for key := range r.members {
		if key.id != userID {
			continue
		}
		if tenant, ok := r.tenants[key.tenantID]; ok && tenant.IsActive {
			tenants = append(tenants, tenant)
		}
	}
	sort.Slice(tenants, func(i, j int) bool { return tenants[i].Name < tenants[j].Name })
	return tenants, nil
}

func (r *tenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant, creator domain.TenantMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tenants[tenant.TenantID]; exists {
		return apperrors.NewDuplicateError("tenant " + tenant.TenantID + " already exists")
	}
	r.tenants[tenant.TenantID] = tenant
	r.members[scopedKey{tenantID: tenant.TenantID, id: creator.UserID}] = creator
	return nil
}

func (r *tenantRepository) AddTenantMember(ctx context.Context, member domain.TenantMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tenants[member.TenantID]; !ok {
		return apperrors.NewNotFoundError("tenant")
	}
	key := scopedKey{tenantID: member.TenantID, id: member.UserID}
	if existing, ok := r.members[key]; ok {
		// role change keeps the original join date
		member.JoinedAt = existing.JoinedAt
	}
	r.members[key] = member
	return nil
}

func (r *tenantRepository) FindTenantMember(ctx context.Context, userID, tenantID string) (*domain.TenantMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.members[scopedKey{tenantID: tenantID, id: userID}]
	if !ok {
		return nil, apperrors.NewNotFoundError("tenant membership")
	}
	return &member, nil
}
