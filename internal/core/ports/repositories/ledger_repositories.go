package repositories

import (
	"context"

	"github.com/SscSPs/share_register/internal/core/domain"
)

// LedgerReader defines read operations for the append-only share transaction ledger
type LedgerReader interface {
	// FindTransactionByID retrieves a ledger entry of a tenant.
	FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.ShareTransaction, error)

	// ListTransactions retrieves ledger entries newest first (registration time, then id) using token-based pagination.
	// A limit <= 0 returns every remaining entry. It returns the entries, a token for the next page, and an error.
	ListTransactions(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.ShareTransaction, *string, error)

	// ListTransactionsAscending retrieves every ledger entry of a tenant in application order.
	ListTransactionsAscending(ctx context.Context, tenantID string) ([]domain.ShareTransaction, error)

	// CountTransactionsByShareholder counts ledger entries naming the shareholder as source or target.
	CountTransactionsByShareholder(ctx context.Context, tenantID, shareholderID string) (int, error)
}

// LedgerWriter defines the only path through which the register changes.
type LedgerWriter interface {
	// ApplyPlan executes a validated plan as one unit: every deactivation is a compare-and-swap on
	// (is_active, version), then the new positions are inserted and the transaction is appended.
	// A lost race or a range collision yields apperrors.ErrConflict and nothing is written.
	ApplyPlan(ctx context.Context, plan domain.PositionPlan) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx is implemented by stores whose ApplyPlan runs inside a database transaction
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
