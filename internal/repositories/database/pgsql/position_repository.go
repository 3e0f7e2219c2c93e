package pgsql

import (
	"context"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	"github.com/SscSPs/share_register/internal/models"
	"github.com/SscSPs/share_register/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPositionRepository struct {
	BaseRepository
}

func newPgxPositionRepository(pool *pgxpool.Pool) portsrepo.PositionRepositoryFacade {
	return &PgxPositionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PositionRepositoryFacade = (*PgxPositionRepository)(nil)

// share_range is generated by the database and not selected.
const fullPositionSelectQuery = `
SELECT
	position_id, tenant_id, shareholder_id, share_class, share_number_from, share_number_to,
	share_count, nominal_value, acquisition_price, acquisition_date, transaction_id, is_active,
	created_at, created_by, last_updated_at, last_updated_by, version
FROM shares
`

const insertPositionQuery = `
	INSERT INTO shares (
		position_id, tenant_id, shareholder_id, share_class, share_number_from, share_number_to,
		share_count, nominal_value, acquisition_price, acquisition_date, transaction_id, is_active,
		created_at, created_by, last_updated_at, last_updated_by, version
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
`

const deactivatePositionQuery = `
	UPDATE shares
	SET is_active = false, last_updated_at = $1, last_updated_by = $2, version = version + 1
	WHERE tenant_id = $3 AND position_id = $4 AND is_active = true AND version = $5;
`

func (r *PgxPositionRepository) getPositions(ctx context.Context, filterQuery string, args ...any) ([]domain.SharePosition, error) {
	rows, err := r.Pool.Query(ctx, fullPositionSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query share positions", err)
	}
	defer rows.Close()

	positions, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SharePosition])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect share position rows", err)
	}
	return mapping.ToDomainSharePositions(positions), nil
}

func (r *PgxPositionRepository) ListActivePositions(ctx context.Context, tenantID string) ([]domain.SharePosition, error) {
	return r.getPositions(ctx, `WHERE tenant_id = $1 AND is_active = true ORDER BY share_class, share_number_from`, tenantID)
}

func (r *PgxPositionRepository) ListActivePositionsByClass(ctx context.Context, tenantID, shareClass string) ([]domain.SharePosition, error) {
	return r.getPositions(ctx, `WHERE tenant_id = $1 AND share_class = $2 AND is_active = true ORDER BY share_number_from`, tenantID, shareClass)
}

func (r *PgxPositionRepository) ListPositionsByShareholder(ctx context.Context, tenantID, shareholderID string) ([]domain.SharePosition, error) {
	return r.getPositions(ctx, `WHERE tenant_id = $1 AND shareholder_id = $2 ORDER BY created_at DESC, share_class, share_number_from`, tenantID, shareholderID)
}

func positionArgs(position domain.SharePosition) []any {
	m := mapping.ToModelSharePosition(position)
	return []any{
		m.PositionID, m.TenantID, m.ShareholderID, m.ShareClass, m.ShareNumberFrom, m.ShareNumberTo,
		m.Count, m.NominalValue, m.AcquisitionPrice, m.AcquisitionDate, m.TransactionID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	}
}

// positionWriteError maps insert failures: an active range collision is a lost race, not a bad request.
func positionWriteError(err error, positionID string) error {
	if err == nil {
		return nil
	}
	switch pgErrorCode(err) {
	case pgExclusionViolation:
		return apperrors.NewConflictError("shares of position " + positionID + " overlap an active position")
	case pgUniqueViolation:
		return apperrors.NewDuplicateError("position " + positionID + " already exists")
	case pgForeignKeyViolation:
		return apperrors.NewConflictError("position " + positionID + " refers to a removed record")
	}
	return apperrors.NewStorageError("failed to insert position "+positionID, err)
}

func deactivationResult(tag pgconn.CommandTag, err error, positionID string) error {
	if err != nil {
		return apperrors.NewStorageError("failed to deactivate position "+positionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("position " + positionID + " was modified concurrently")
	}
	return nil
}
