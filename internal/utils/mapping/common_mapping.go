package mapping

import (
	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/models"
)

func toModelAudit(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
		Version:       d.Version,
	}
}

func toDomainAudit(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
		Version:       m.Version,
	}
}

// mapSlice converts every element of in with fn. A nil input yields an empty, non-nil slice.
func mapSlice[M, D any](in []M, fn func(M) D) []D {
	out := make([]D, 0, len(in))
	for _, m := range in {
		out = append(out, fn(m))
	}
	return out
}
