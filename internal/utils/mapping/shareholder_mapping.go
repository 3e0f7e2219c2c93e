package mapping

import (
	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/models"
)

// ToModelShareholder flattens a domain Shareholder into its row form
func ToModelShareholder(d domain.Shareholder) models.Shareholder {
	return models.Shareholder{
		ShareholderID:  d.ShareholderID,
		TenantID:       d.TenantID,
		Name:           d.Name,
		Type:           string(d.Type),
		IdentityNumber: d.IdentityNumber,
		Email:          d.Contact.Email,
		Phone:          d.Contact.Phone,
		Address:        d.Contact.Address,
		IsActive:       d.IsActive,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainShareholder converts a shareholder row to a domain Shareholder
func ToDomainShareholder(m models.Shareholder) domain.Shareholder {
	return domain.Shareholder{
		ShareholderID:  m.ShareholderID,
		TenantID:       m.TenantID,
		Name:           m.Name,
		Type:           domain.ShareholderType(m.Type),
		IdentityNumber: m.IdentityNumber,
		Contact: domain.ContactInfo{
			Email:   m.Email,
			Phone:   m.Phone,
			Address: m.Address,
		},
		IsActive:    m.IsActive,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainShareholders converts a slice of shareholder rows
func ToDomainShareholders(ms []models.Shareholder) []domain.Shareholder {
	return mapSlice(ms, ToDomainShareholder)
}
