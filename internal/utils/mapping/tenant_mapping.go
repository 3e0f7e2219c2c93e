package mapping

import (
	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:           d.TenantID,
		Name:               d.Name,
		OrganisationNumber: d.OrganisationNumber,
		Description:        d.Description,
		IsActive:           d.IsActive,
		AuditFields:        toModelAudit(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:           m.TenantID,
		Name:               m.Name,
		OrganisationNumber: m.OrganisationNumber,
		Description:        m.Description,
		IsActive:           m.IsActive,
		AuditFields:        toDomainAudit(m.AuditFields),
	}
}

// ToDomainTenants converts a slice of model Tenants
func ToDomainTenants(ms []models.Tenant) []domain.Tenant {
	return mapSlice(ms, ToDomainTenant)
}

// ToDomainTenantMember converts a membership row to its domain form
func ToDomainTenantMember(m models.TenantMember) domain.TenantMember {
	return domain.TenantMember{
		UserID:   m.UserID,
		TenantID: m.TenantID,
		Role:     domain.TenantRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
