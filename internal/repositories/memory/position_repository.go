package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
)

type positionRepository struct {
	*store
}

var _ portsrepo.PositionRepositoryFacade = (*positionRepository)(nil)

func (r *positionRepository) ListActivePositions(ctx context.Context, tenantID string) ([]domain.SharePosition, error) {
	return r.listPositions(func(p domain.SharePosition) bool {
		return p.IsActive && p.TenantID == tenantID
	}, byRange), nil
}

func (r *positionRepository) ListActivePositionsByClass(ctx context.Context, tenantID, shareClass string) ([]domain.SharePosition, error) {
	return r.listPositions(func(p domain.SharePosition) bool {
		return p.IsActive && p.TenantID == tenantID && p.ShareClass == shareClass
	}, byRange), nil
}

func (r *positionRepository) ListPositionsByShareholder(ctx context.Context, tenantID, shareholderID string) ([]domain.SharePosition, error) {
	return r.listPositions(func(p domain.SharePosition) bool {
		return p.TenantID == tenantID && p.ShareholderID == shareholderID
	}, newestFirst), nil
}

func (r *positionRepository) listPositions(keep func(domain.SharePosition) bool, less func(a, b domain.SharePosition) bool) []domain.SharePosition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	positions := []domain.SharePosition{}
	for _, p := range r.positions {
		if keep(p) {
			positions = append(positions, p)
		}
	}
	sort.Slice(positions, func(i, j int) bool { return less(positions[i], positions[j]) })
	return positions
}

func byRange(a, b domain.SharePosition) bool {
	if a.ShareClass != b.ShareClass {
		return a.ShareClass < b.ShareClass
	}
	return a.ShareNumberFrom < b.ShareNumberFrom
}

func newestFirst(a, b domain.SharePosition) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return byRange(a, b)
}

// checkDeactivation is the compare-and-swap precondition on (is_active, version).
// Callers must hold the write lock.
func (s *store) checkDeactivation(tenantID, positionID string, expectedVersion int64) error {
	p, ok := s.positions[positionID]
	if !ok || p.TenantID != tenantID {
		return apperrors.NewConflictError("position " + positionID + " no longer exists")
	}
	if !p.IsActive || p.Version != expectedVersion {
		return apperrors.NewConflictError("position " + positionID + " was modified concurrently")
	}
	return nil
}

func (s *store) deactivate(positionID, userID string, now time.Time) {
	p := s.positions[positionID]
	p.IsActive = false
	p.LastUpdatedAt = now
	p.LastUpdatedBy = userID
	p.Version++
	s.positions[positionID] = p
}
