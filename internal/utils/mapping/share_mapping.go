package mapping

import (
	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/models"
)

// ToModelShareClass converts a domain ShareClass to a model ShareClass
func ToModelShareClass(d domain.ShareClass) models.ShareClass {
	return models.ShareClass{
		TenantID:      d.TenantID,
		Label:         d.Label,
		VotesPerShare: d.VotesPerShare,
		NominalValue:  d.NominalValue,
		Description:   d.Description,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainShareClass converts a model ShareClass to a domain ShareClass
func ToDomainShareClass(m models.ShareClass) domain.ShareClass {
	return domain.ShareClass{
		TenantID:      m.TenantID,
		Label:         m.Label,
		VotesPerShare: m.VotesPerShare,
		NominalValue:  m.NominalValue,
		Description:   m.Description,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainShareClasses converts a slice of model ShareClasses
func ToDomainShareClasses(ms []models.ShareClass) []domain.ShareClass {
	return mapSlice(ms, ToDomainShareClass)
}

// ToModelSharePosition converts a domain SharePosition to a model SharePosition
func ToModelSharePosition(d domain.SharePosition) models.SharePosition {
	return models.SharePosition{
		PositionID:       d.PositionID,
		TenantID:         d.TenantID,
		ShareholderID:    d.ShareholderID,
		ShareClass:       d.ShareClass,
		ShareNumberFrom:  d.ShareNumberFrom,
		ShareNumberTo:    d.ShareNumberTo,
		Count:            d.Count,
		NominalValue:     d.NominalValue,
		AcquisitionPrice: d.AcquisitionPrice,
		AcquisitionDate:  d.AcquisitionDate,
		TransactionID:    d.TransactionID,
		IsActive:         d.IsActive,
		AuditFields:      toModelAudit(d.AuditFields),
	}
}

// ToDomainSharePosition converts a model SharePosition to a domain SharePosition
func ToDomainSharePosition(m models.SharePosition) domain.SharePosition {
	return domain.SharePosition{
		PositionID:       m.PositionID,
		TenantID:         m.TenantID,
		ShareholderID:    m.ShareholderID,
		ShareClass:       m.ShareClass,
		ShareNumberFrom:  m.ShareNumberFrom,
		ShareNumberTo:    m.ShareNumberTo,
		Count:            m.Count,
		NominalValue:     m.NominalValue,
		AcquisitionPrice: m.AcquisitionPrice,
		AcquisitionDate:  m.AcquisitionDate,
		TransactionID:    m.TransactionID,
		IsActive:         m.IsActive,
		AuditFields:      toDomainAudit(m.AuditFields),
	}
}

// ToDomainSharePositions converts a slice of model SharePositions
func ToDomainSharePositions(ms []models.SharePosition) []domain.SharePosition {
	return mapSlice(ms, ToDomainSharePosition)
}

// ToModelShareTransaction converts a ledger entry to its row form
func ToModelShareTransaction(d domain.ShareTransaction) models.ShareTransaction {
	return models.ShareTransaction{
		TransactionID:     d.TransactionID,
		TenantID:          d.TenantID,
		TransactionType:   string(d.Type),
		TransactionDate:   d.TransactionDate,
		Description:       d.Description,
		FromShareholderID: d.FromShareholderID,
		ToShareholderID:   d.ToShareholderID,
		ShareClass:        d.ShareClass,
		NumberOfShares:    d.NumberOfShares,
		ShareNumberFrom:   d.ShareNumberFrom,
		ShareNumberTo:     d.ShareNumberTo,
		PricePerShare:     d.PricePerShare,
		TotalAmount:       d.TotalAmount,
		DecisionID:        d.DecisionID,
		MeetingID:         d.MeetingID,
		RegisteredBy:      d.RegisteredBy,
		RegisteredAt:      d.RegisteredAt,
	}
}

// ToDomainShareTransaction converts a ledger row to a domain ShareTransaction
func ToDomainShareTransaction(m models.ShareTransaction) domain.ShareTransaction {
	return domain.ShareTransaction{
		TransactionID:     m.TransactionID,
		TenantID:          m.TenantID,
		Type:              domain.ShareTransactionType(m.TransactionType),
		TransactionDate:   m.TransactionDate,
		Description:       m.Description,
		FromShareholderID: m.FromShareholderID,
		ToShareholderID:   m.ToShareholderID,
		ShareClass:        m.ShareClass,
		NumberOfShares:    m.NumberOfShares,
		ShareNumberFrom:   m.ShareNumberFrom,
		ShareNumberTo:     m.ShareNumberTo,
		PricePerShare:     m.PricePerShare,
		TotalAmount:       m.TotalAmount,
		DecisionID:        m.DecisionID,
		MeetingID:         m.MeetingID,
		RegisteredBy:      m.RegisteredBy,
		RegisteredAt:      m.RegisteredAt,
	}
}

// ToDomainShareTransactions converts a slice of ledger rows
func ToDomainShareTransactions(ms []models.ShareTransaction) []domain.ShareTransaction {
	return mapSlice(ms, ToDomainShareTransaction)
}
