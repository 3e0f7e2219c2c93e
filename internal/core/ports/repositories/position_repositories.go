package repositories

import (
	"context"

	"github.com/SscSPs/share_register/internal/core/domain"
)

// PositionReader defines read operations for the share position store
type PositionReader interface {
	// ListActivePositions retrieves every active position of a tenant. It is the sole input to cap table computation.
	ListActivePositions(ctx context.Context, tenantID string) ([]domain.SharePosition, error)

	// ListActivePositionsByClass retrieves the active positions of one share class.
	ListActivePositionsByClass(ctx context.Context, tenantID, shareClass string) ([]domain.SharePosition, error)

	// ListPositionsByShareholder retrieves active and inactive positions of a shareholder, newest first.
	ListPositionsByShareholder(ctx context.Context, tenantID, shareholderID string) ([]domain.SharePosition, error)
}

// PositionRepositoryFacade is the read side of the position store.
// Positions change only through LedgerWriter.ApplyPlan.
type PositionRepositoryFacade interface {
	PositionReader
}
