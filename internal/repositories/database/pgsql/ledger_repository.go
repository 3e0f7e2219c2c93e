package pgsql

import (
	"context"
	"sort"
	"strconv"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	"github.com/SscSPs/share_register/internal/models"
	"github.com/SscSPs/share_register/internal/utils/mapping"
	"github.com/SscSPs/share_register/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

const fullTransactionSelectQuery = `
SELECT
	transaction_id, tenant_id, transaction_type, transaction_date, description,
	from_shareholder_id, to_shareholder_id, share_class, number_of_shares,
	share_number_from, share_number_to, price_per_share, total_amount,
	decision_id, meeting_id, registered_by, registered_at
FROM share_transactions
`

func (r *PgxLedgerRepository) getTransactions(ctx context.Context, filterQuery string, args ...any) ([]models.ShareTransaction, error) {
	rows, err := r.Pool.Query(ctx, fullTransactionSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query share transactions", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ShareTransaction])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect share transaction rows", err)
	}
	return txns, nil
}

func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.ShareTransaction, error) {
	txns, err := r.getTransactions(ctx, `WHERE tenant_id = $1 AND transaction_id = $2`, tenantID, transactionID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperrors.NewNotFoundError("share transaction")
	}
	txn := mapping.ToDomainShareTransaction(txns[0])
	return &txn, nil
}

// ListTransactions pages newest first on (registered_at, transaction_id).
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.ShareTransaction, *string, error) {
	filterClause := `WHERE tenant_id = $1`
	args := []any{tenantID}

	if nextToken != nil && *nextToken != "" {
		lastAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationErrorWithCause("invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the keyset stable when registration times tie
		filterClause += ` AND (registered_at, transaction_id) < ($2, $3)`
		args = append(args, lastAt, lastID)
	}

	query := filterClause + ` ORDER BY registered_at DESC, transaction_id DESC`
	if limit > 0 {
		// one extra row tells whether another page exists
		query += ` LIMIT $` + strconv.Itoa(len(args)+1)
		args = append(args, limit+1)
	}

	rows, err := r.getTransactions(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if limit > 0 && len(rows) > limit {
		last := rows[limit-1]
		token := pagination.EncodeToken(last.RegisteredAt, last.TransactionID)
		nextTokenVal = &token
		rows = rows[:limit]
	}
	return mapping.ToDomainShareTransactions(rows), nextTokenVal, nil
}

func (r *PgxLedgerRepository) ListTransactionsAscending(ctx context.Context, tenantID string) ([]domain.ShareTransaction, error) {
	rows, err := r.getTransactions(ctx, `WHERE tenant_id = $1 ORDER BY ledger_seq`, tenantID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainShareTransactions(rows), nil
}

func (r *PgxLedgerRepository) CountTransactionsByShareholder(ctx context.Context, tenantID, shareholderID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM share_transactions
		WHERE tenant_id = $1 AND (to_shareholder_id = $2 OR from_shareholder_id = $2);`,
		tenantID, shareholderID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewStorageError("failed to count transactions of shareholder "+shareholderID, err)
	}
	return count, nil
}

const claimShareholderQuery = `
	UPDATE shareholders
	SET version = version + 1
	WHERE tenant_id = $1 AND shareholder_id = $2 AND is_active = true;
`

// partyIDs lists the shareholders a transaction touches in a stable order, so concurrent
// claims always lock rows in the same sequence.
func partyIDs(txn domain.ShareTransaction) []string {
	ids := []string{txn.ToShareholderID}
	if source := txn.SourceShareholderID(); source != "" && source != txn.ToShareholderID {
		ids = append(ids, source)
	}
	sort.Strings(ids)
	return ids
}

// ApplyPlan appends the transaction and swaps positions in one database transaction.
// Deactivations are compare-and-swap updates; the exclusion constraint on shares.share_range
// rejects any overlap a concurrent writer slipped in.
func (r *PgxLedgerRepository) ApplyPlan(ctx context.Context, plan domain.PositionPlan) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	txn := plan.Transaction

	// 1. Claim the shareholders. The version bump makes a concurrent deactivation lose its CAS,
	// and the row lock holds off a delete until this transaction ends.
	for _, id := range partyIDs(txn) {
		tag, err := tx.Exec(ctx, claimShareholderQuery, txn.TenantID, id)
		if err != nil {
			return apperrors.NewStorageError("failed to claim shareholder "+id, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewConflictError("shareholder " + id + " is no longer active")
		}
	}

	// 2. Release the source positions
	for _, d := range plan.Deactivate {
		tag, err := tx.Exec(ctx, deactivatePositionQuery, txn.RegisteredAt, txn.RegisteredBy, txn.TenantID, d.PositionID, d.ExpectedVersion)
		if err := deactivationResult(tag, err, d.PositionID); err != nil {
			return err
		}
	}

	// 3. Append the ledger entry
	m := mapping.ToModelShareTransaction(txn)
	_, err = tx.Exec(ctx, `
		INSERT INTO share_transactions (
			transaction_id, tenant_id, transaction_type, transaction_date, description,
			from_shareholder_id, to_shareholder_id, share_class, number_of_shares,
			share_number_from, share_number_to, price_per_share, total_amount,
			decision_id, meeting_id, registered_by, registered_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`,
		m.TransactionID, m.TenantID, m.TransactionType, m.TransactionDate, m.Description,
		m.FromShareholderID, m.ToShareholderID, m.ShareClass, m.NumberOfShares,
		m.ShareNumberFrom, m.ShareNumberTo, m.PricePerShare, m.TotalAmount,
		m.DecisionID, m.MeetingID, m.RegisteredBy, m.RegisteredAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError("share transaction " + txn.TransactionID + " already registered")
		case pgForeignKeyViolation:
			return apperrors.NewConflictError("share transaction " + txn.TransactionID + " refers to a removed record")
		}
		return apperrors.NewStorageError("failed to insert share transaction "+txn.TransactionID, err)
	}

	// 4. Insert the new positions
	if len(plan.Create) > 0 {
		batch := &pgx.Batch{}
		for _, p := range plan.Create {
			batch.Queue(insertPositionQuery, positionArgs(p)...)
		}
		br := tx.SendBatch(ctx, batch)
		for _, p := range plan.Create {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return positionWriteError(err, p.PositionID)
			}
		}
		if err := br.Close(); err != nil {
			return apperrors.NewStorageError("failed to close position batch", err)
		}
	}

	return r.Commit(ctx, tx)
}
