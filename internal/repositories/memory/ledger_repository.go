package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	"github.com/SscSPs/share_register/internal/utils/pagination"
)

type ledgerRepository struct {
	*store
}

var _ portsrepo.LedgerRepositoryFacade = (*ledgerRepository)(nil)

func (r *ledgerRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.ShareTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.ledgerIndex[transactionID]
	if !ok || r.ledger[idx].TenantID != tenantID {
		return nil, apperrors.NewNotFoundError("share transaction")
	}
	txn := r.ledger[idx]
	return &txn, nil
}

func (r *ledgerRepository) ListTransactions(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.ShareTransaction, *string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hasCursor bool
	var cursor domain.ShareTransaction
	if nextToken != nil && *nextToken != "" {
		at, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationErrorWithCause("invalid nextToken", err)
		}
		hasCursor = true
		cursor = domain.ShareTransaction{TransactionID: id, RegisteredAt: at}
	}

	page := []domain.ShareTransaction{}
	for _, txn := range newestFirstLedger(r.ledger, tenantID) {
		if hasCursor && !pagination.Before(txn.RegisteredAt, txn.TransactionID, cursor.RegisteredAt, cursor.TransactionID) {
			continue
		}
		page = append(page, txn)
	}

	if limit <= 0 || len(page) <= limit {
		return page, nil, nil
	}
	last := page[limit-1]
	token := pagination.EncodeToken(last.RegisteredAt, last.TransactionID)
	return page[:limit], &token, nil
}

func (r *ledgerRepository) ListTransactionsAscending(ctx context.Context, tenantID string) ([]domain.ShareTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txns := []domain.ShareTransaction{}
	for _, txn := range r.ledger {
		if txn.TenantID == tenantID {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

func (r *ledgerRepository) CountTransactionsByShareholder(ctx context.Context, tenantID, shareholderID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return countReferences(r.ledger, tenantID, shareholderID), nil
}

// ApplyPlan checks every precondition before touching the store, so a failed plan leaves no trace.
func (r *ledgerRepository) ApplyPlan(ctx context.Context, plan domain.PositionPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn := plan.Transaction
	if _, exists := r.ledgerIndex[txn.TransactionID]; exists {
		return apperrors.NewDuplicateError("share transaction " + txn.TransactionID + " already registered")
	}

	parties, err := r.activeParties(txn)
	if err != nil {
		return err
	}

	released := make(map[string]bool, len(plan.Deactivate))
	for _, d := range plan.Deactivate {
		if err := r.checkDeactivation(txn.TenantID, d.PositionID, d.ExpectedVersion); err != nil {
			return err
		}
		released[d.PositionID] = true
	}

	for i, p := range plan.Create {
		if err := p.Validate(); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if _, exists := r.positions[p.PositionID]; exists {
			return apperrors.NewDuplicateError("position " + p.PositionID + " already exists")
		}
		if clash, ok := r.overlapsActive(p.TenantID, p.ShareClass, p.Range(), released); ok {
			return apperrors.NewConflictError("shares " + p.Range().String() + " overlap active position " + clash.PositionID)
		}
		for _, other := range plan.Create[:i] {
			if other.ShareClass == p.ShareClass && other.Range().Overlaps(p.Range()) {
				return apperrors.NewConflictError("planned positions overlap at " + p.Range().String())
			}
		}
	}

	for _, key := range parties {
		sh := r.shareholders[key]
		sh.Version++
		r.shareholders[key] = sh
	}
	for _, d := range plan.Deactivate {
		r.deactivate(d.PositionID, txn.RegisteredBy, txn.RegisteredAt)
	}
	for _, p := range plan.Create {
		r.positions[p.PositionID] = p
	}
	r.ledgerIndex[txn.TransactionID] = len(r.ledger)
	r.ledger = append(r.ledger, txn)
	return nil
}

// activeParties resolves the recipient and source of txn, both of which must still be active.
// Callers must hold the write lock.
func (s *store) activeParties(txn domain.ShareTransaction) ([]scopedKey, error) {
	ids := []string{txn.ToShareholderID}
	if source := txn.SourceShareholderID(); source != "" && source != txn.ToShareholderID {
		ids = append(ids, source)
	}
	keys := make([]scopedKey, 0, len(ids))
	for _, id := range ids {
		key := scopedKey{tenantID: txn.TenantID, id: id}
		if sh, ok := s.shareholders[key]; !ok || !sh.IsActive {
			return nil, apperrors.NewConflictError("shareholder " + id + " is no longer active")
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func countReferences(ledger []domain.ShareTransaction, tenantID, shareholderID string) int {
	count := 0
	for _, txn := range ledger {
		if txn.TenantID != tenantID {
			continue
		}
		if txn.ToShareholderID == shareholderID || txn.SourceShareholderID() == shareholderID {
			count++
		}
	}
	return count
}

func newestFirstLedger(ledger []domain.ShareTransaction, tenantID string) []domain.ShareTransaction {
	out := make([]domain.ShareTransaction, 0, len(ledger))
	for _, txn := range ledger {
		if txn.TenantID == tenantID {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		// newest first is the reverse of the cursor order
		return pagination.Before(out[j].RegisteredAt, out[j].TransactionID, out[i].RegisteredAt, out[i].TransactionID)
	})
	return out
}
