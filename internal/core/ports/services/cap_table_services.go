package services

import (
	"context"
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/utils/export"
)

// CapTableSvcFacade defines the read-side operations of the register
type CapTableSvcFacade interface {
	// GetCapTable computes the current snapshot, or the snapshot at the end of asOf when given.
	GetCapTable(ctx context.Context, tenantID string, asOf *time.Time, userID string) (*domain.CapTableSummary, error)

	// ExportCapTable renders the current snapshot and the ledger history.
	ExportCapTable(ctx context.Context, tenantID string, format export.Format, userID string) ([]byte, error)

	// VerifyRegister replays the ledger and compares the result with the stored active positions.
	VerifyRegister(ctx context.Context, tenantID, userID string) (*domain.RegisterVerification, error)
}
