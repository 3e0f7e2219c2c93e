package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
)

type shareClassRepository struct {
	*store
}

var _ portsrepo.ShareClassRepositoryFacade = (*shareClassRepository)(nil)

func (r *shareClassRepository) FindShareClass(ctx context.Context, tenantID, label string) (*domain.ShareClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	class, ok := r.classes[scopedKey{tenantID: tenantID, id: label}]
	if !ok {
		return nil, apperrors.NewNotFoundError("share class")
	}
	return &class, nil
}

func (r *shareClassRepository) ListShareClasses(ctx context.Context, tenantID string) ([]domain.ShareClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes := []domain.ShareClass{}
	for key, c := range r.classes {
		if key.tenantID == tenantID {
			classes = append(classes, c)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Label < classes[j].Label })
	return classes, nil
}

func (r *shareClassRepository) SaveShareClass(ctx context.Context, class domain.ShareClass) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scopedKey{tenantID: class.TenantID, id: class.Label}
	if _, exists := r.classes[key]; exists {
		return apperrors.NewDuplicateError("share class " + class.Label + " already exists")
	}
	r.classes[key] = class
	return nil
}
