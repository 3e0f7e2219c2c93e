package repositories

import (
	"context"

	"github.com/SscSPs/share_register/internal/core/domain"
)

// ShareClassReader defines read operations for share class metadata
type ShareClassReader interface {
	// FindShareClass retrieves a class of a tenant by label.
	FindShareClass(ctx context.Context, tenantID, label string) (*domain.ShareClass, error)

	// ListShareClasses retrieves all classes of a tenant ordered by label.
	ListShareClasses(ctx context.Context, tenantID string) ([]domain.ShareClass, error)
}

// ShareClassWriter defines write operations for share class metadata
type ShareClassWriter interface {
	// SaveShareClass persists a new class. A label already used in the tenant yields apperrors.ErrDuplicate.
	SaveShareClass(ctx context.Context, class domain.ShareClass) error
}

// ShareClassRepositoryFacade combines all share class repository interfaces
type ShareClassRepositoryFacade interface {
	ShareClassReader
	ShareClassWriter
}
