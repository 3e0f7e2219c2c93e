package pgsql

import (
	"context"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	"github.com/SscSPs/share_register/internal/models"
	"github.com/SscSPs/share_register/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShareClassRepository struct {
	BaseRepository
}

func newPgxShareClassRepository(pool *pgxpool.Pool) portsrepo.ShareClassRepositoryFacade {
	return &PgxShareClassRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ShareClassRepositoryFacade = (*PgxShareClassRepository)(nil)

const fullShareClassSelectQuery = `
SELECT
	tenant_id, label, votes_per_share, nominal_value, description,
	created_at, created_by, last_updated_at, last_updated_by, version
FROM share_classes
`

func (r *PgxShareClassRepository) getShareClasses(ctx context.Context, filterQuery string, args ...any) ([]domain.ShareClass, error) {
	rows, err := r.Pool.Query(ctx, fullShareClassSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query share classes", err)
	}
	defer rows.Close()

	classes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ShareClass])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect share class rows", err)
	}
	return mapping.ToDomainShareClasses(classes), nil
}

func (r *PgxShareClassRepository) FindShareClass(ctx context.Context, tenantID, label string) (*domain.ShareClass, error) {
	classes, err := r.getShareClasses(ctx, `WHERE tenant_id = $1 AND label = $2`, tenantID, label)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, apperrors.NewNotFoundError("share class")
	}
	return &classes[0], nil
}

func (r *PgxShareClassRepository) ListShareClasses(ctx context.Context, tenantID string) ([]domain.ShareClass, error) {
	return r.getShareClasses(ctx, `WHERE tenant_id = $1 ORDER BY label`, tenantID)
}

func (r *PgxShareClassRepository) SaveShareClass(ctx context.Context, class domain.ShareClass) error {
	m := mapping.ToModelShareClass(class)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO share_classes (
			tenant_id, label, votes_per_share, nominal_value, description,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.TenantID, m.Label, m.VotesPerShare, m.NominalValue, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError("share class " + class.Label + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("tenant")
		}
		return apperrors.NewStorageError("failed to save share class "+class.Label, err)
	}
	return nil
}
