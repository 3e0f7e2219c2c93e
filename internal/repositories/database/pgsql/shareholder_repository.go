package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	"github.com/SscSPs/share_register/internal/models"
	"github.com/SscSPs/share_register/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShareholderRepository struct {
	BaseRepository
}

func newPgxShareholderRepository(pool *pgxpool.Pool) portsrepo.ShareholderRepositoryFacade {
	return &PgxShareholderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ShareholderRepositoryFacade = (*PgxShareholderRepository)(nil)

const fullShareholderSelectQuery = `
SELECT
	shareholder_id, tenant_id, name, shareholder_type, identity_number,
	email, phone, address, is_active,
	created_at, created_by, last_updated_at, last_updated_by, version
FROM shareholders
`

func (r *PgxShareholderRepository) getShareholders(ctx context.Context, filterQuery string, args ...any) ([]domain.Shareholder, error) {
	rows, err := r.Pool.Query(ctx, fullShareholderSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query shareholders", err)
	}
	defer rows.Close()

	shareholders, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Shareholder])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect shareholder rows", err)
	}
	return mapping.ToDomainShareholders(shareholders), nil
}

func (r *PgxShareholderRepository) FindShareholderByID(ctx context.Context, tenantID, shareholderID string) (*domain.Shareholder, error) {
	shareholders, err := r.getShareholders(ctx, `WHERE tenant_id = $1 AND shareholder_id = $2`, tenantID, shareholderID)
	if err != nil {
		return nil, err
	}
	if len(shareholders) == 0 {
		return nil, apperrors.NewNotFoundError("shareholder")
	}
	return &shareholders[0], nil
}

func (r *PgxShareholderRepository) ListShareholders(ctx context.Context, tenantID string) ([]domain.Shareholder, error) {
	return r.getShareholders(ctx, `WHERE tenant_id = $1 ORDER BY name, shareholder_id`, tenantID)
}

func (r *PgxShareholderRepository) SaveShareholder(ctx context.Context, shareholder domain.Shareholder) error {
	m := mapping.ToModelShareholder(shareholder)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO shareholders (
			shareholder_id, tenant_id, name, shareholder_type, identity_number,
			email, phone, address, is_active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		m.ShareholderID, m.TenantID, m.Name, m.Type, m.IdentityNumber,
		m.Email, m.Phone, m.Address, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError("shareholder " + shareholder.ShareholderID + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("tenant")
		}
		return apperrors.NewStorageError("failed to save shareholder "+shareholder.ShareholderID, err)
	}
	return nil
}

func (r *PgxShareholderRepository) UpdateShareholder(ctx context.Context, shareholder domain.Shareholder) error {
	m := mapping.ToModelShareholder(shareholder)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE shareholders
		SET name = $1, email = $2, phone = $3, address = $4,
			last_updated_at = $5, last_updated_by = $6, version = version + 1
		WHERE tenant_id = $7 AND shareholder_id = $8 AND version = $9;`,
		m.Name, m.Email, m.Phone, m.Address,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.TenantID, m.ShareholderID, m.Version,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to update shareholder "+shareholder.ShareholderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("shareholder " + shareholder.ShareholderID + " was modified concurrently")
	}
	return nil
}

func (r *PgxShareholderRepository) DeactivateShareholder(ctx context.Context, tenantID, shareholderID string, expectedVersion int64, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE shareholders
		SET is_active = false, last_updated_at = $1, last_updated_by = $2, version = version + 1
		WHERE tenant_id = $3 AND shareholder_id = $4 AND version = $5;`,
		now, userID, tenantID, shareholderID, expectedVersion,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to deactivate shareholder "+shareholderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("shareholder " + shareholderID + " was modified concurrently")
	}
	return nil
}

func (r *PgxShareholderRepository) DeleteShareholder(ctx context.Context, tenantID, shareholderID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM shareholders WHERE tenant_id = $1 AND shareholder_id = $2;`, tenantID, shareholderID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewConflictError("shareholder " + shareholderID + " is still referenced")
		}
		return apperrors.NewStorageError("failed to delete shareholder "+shareholderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("shareholder")
	}
	return nil
}
