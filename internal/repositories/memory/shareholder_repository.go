package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
)

type shareholderRepository struct {
	*store
}

var _ portsrepo.ShareholderRepositoryFacade = (*shareholderRepository)(nil)

func (r *shareholderRepository) FindShareholderByID(ctx context.Context, tenantID, shareholderID string) (*domain.Shareholder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shareholder, ok := r.shareholders[scopedKey{tenantID: tenantID, id: shareholderID}]
	if !ok {
		return nil, apperrors.NewNotFoundError("shareholder")
	}
	return &shareholder, nil
}

func (r *shareholderRepository) ListShareholders(ctx context.Context, tenantID string) ([]domain.Shareholder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shareholders := []domain.Shareholder{}
	for key, sh := range r.shareholders {
		if key.tenantID == tenantID {
			shareholders = append(shareholders, sh)
		}
	}
	sort.Slice(shareholders, func(i, j int) bool {
		if shareholders[i].Name != shareholders[j].Name {
			return shareholders[i].Name < shareholders[j].Name
		}
		return shareholders[i].ShareholderID < shareholders[j].ShareholderID
	})
	return shareholders, nil
}

func (r *shareholderRepository) SaveShareholder(ctx context.Context, shareholder domain.Shareholder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scopedKey{tenantID: shareholder.TenantID, id: shareholder.ShareholderID}
	if _, exists := r.shareholders[key]; exists {
		return apperrors.NewDuplicateError("shareholder " + shareholder.ShareholderID + " already exists")
	}
	r.shareholders[key] = shareholder
	return nil
}

func (r *shareholderRepository) UpdateShareholder(ctx context.Context, shareholder domain.Shareholder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scopedKey{tenantID: shareholder.TenantID, id: shareholder.ShareholderID}
	stored, ok := r.shareholders[key]
	if !ok {
		return apperrors.NewNotFoundError("shareholder")
	}
	if stored.Version != shareholder.Version {
		return apperrors.NewConflictError("shareholder " + shareholder.ShareholderID + " was modified concurrently")
	}
	shareholder.Version++
	shareholder.IsActive = stored.IsActive
	shareholder.CreatedAt, shareholder.CreatedBy = stored.CreatedAt, stored.CreatedBy
	r.shareholders[key] = shareholder
	return nil
}

func (r *shareholderRepository) DeactivateShareholder(ctx context.Context, tenantID, shareholderID string, expectedVersion int64, userID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scopedKey{tenantID: tenantID, id: shareholderID}
	stored, ok := r.shareholders[key]
	if !ok {
		return apperrors.NewNotFoundError("shareholder")
	}
	if stored.Version != expectedVersion {
		return apperrors.NewConflictError("shareholder " + shareholderID + " was modified concurrently")
	}
	stored.IsActive = false
	stored.LastUpdatedAt = now
	stored.LastUpdatedBy = userID
	stored.Version++
	r.shareholders[key] = stored
	return nil
}

func (r *shareholderRepository) DeleteShareholder(ctx context.Context, tenantID, shareholderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scopedKey{tenantID: tenantID, id: shareholderID}
	if _, ok := r.shareholders[key]; !ok {
		return apperrors.NewNotFoundError("shareholder")
	}
	for _, p := range r.positions {
		if p.TenantID == tenantID && p.ShareholderID == shareholderID {
			return apperrors.NewConflictError("shareholder " + shareholderID + " is referenced by positions")
		}
	}
	if countReferences(r.ledger, tenantID, shareholderID) > 0 {
		return apperrors.NewConflictError("shareholder " + shareholderID + " is referenced by the ledger")
	}
	delete(r.shareholders, key)
	return nil
}
