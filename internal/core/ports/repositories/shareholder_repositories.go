package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
)

// ShareholderReader defines read operations for the shareholder directory
type ShareholderReader interface {
	// FindShareholderByID retrieves a shareholder of a tenant. Shareholders of other tenants are not found.
	FindShareholderByID(ctx context.Context, tenantID, shareholderID string) (*domain.Shareholder, error)

	// ListShareholders retrieves all shareholders of a tenant, including inactive ones, ordered by name.
	ListShareholders(ctx context.Context, tenantID string) ([]domain.Shareholder, error)
}

// ShareholderWriter defines write operations for the shareholder directory
type ShareholderWriter interface {
	// SaveShareholder persists a new shareholder.
	SaveShareholder(ctx context.Context, shareholder domain.Shareholder) error

	// UpdateShareholder updates the descriptive fields of a shareholder.
	// The update only succeeds if the stored version equals shareholder.Version.
	UpdateShareholder(ctx context.Context, shareholder domain.Shareholder) error

	// DeactivateShareholder marks a shareholder inactive, keeping it resolvable for the ledger.
	DeactivateShareholder(ctx context.Context, tenantID, shareholderID string, expectedVersion int64, userID string, now time.Time) error

	// DeleteShareholder removes a shareholder that no position or ledger entry refers to.
	DeleteShareholder(ctx context.Context, tenantID, shareholderID string) error
}

// ShareholderRepositoryFacade combines all shareholder-related repository interfaces
type ShareholderRepositoryFacade interface {
	ShareholderReader
	ShareholderWriter
}
