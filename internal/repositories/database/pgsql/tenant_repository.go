package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	"github.com/SscSPs/share_register/internal/models"
	"github.com/SscSPs/share_register/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant data.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryWithTx {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTenantRepository implements portsrepo.TenantRepositoryWithTx
var _ portsrepo.TenantRepositoryWithTx = (*PgxTenantRepository)(nil)

const fullTenantSelectQuery = `
SELECT
	t.tenant_id, t.name, t.organisation_number, t.description, t.is_active,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, t.version
FROM tenants t
`

func (r *PgxTenantRepository) getTenants(ctx context.Context, filterQuery string, args ...any) ([]domain.Tenant, error) {
	rows, err := r.Pool.Query(ctx, fullTenantSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query tenants", err)
	}
	defer rows.Close()

	tenants, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Tenant])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect tenant rows", err)
	}
	return mapping.ToDomainTenants(tenants), nil
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenants, err := r.getTenants(ctx, `WHERE t.tenant_id = $1`, tenantID)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, apperrors.NewNotFoundError("tenant")
	}
	return &tenants[0], nil
}

func (r *PgxTenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	query := `JOIN tenant_members tm ON t.tenant_id = tm.tenant_id
		WHERE tm.user_id = $1 AND t.is_active = true
		ORDER BY t.name;`
	return r.getTenants(ctx, query, userID)
}

// SaveTenant inserts the tenant and its first member in one transaction.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant, creator domain.TenantMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTenant(tenant)
	_, err = tx.Exec(ctx, `
		INSERT INTO tenants (
			tenant_id, name, organisation_number, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.TenantID, m.Name, m.OrganisationNumber, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewDuplicateError("tenant " + tenant.TenantID + " already exists")
		}
		return apperrors.NewStorageError("failed to save tenant "+tenant.TenantID, err)
	}

	if err := insertMember(ctx, tx, creator); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTenantRepository) AddTenantMember(ctx context.Context, member domain.TenantMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertMember(ctx, tx, member); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// insertMember adds a user or updates their role if they already are a member.
func insertMember(ctx context.Context, tx pgx.Tx, member domain.TenantMember) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO tenant_members (user_id, tenant_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, tenant_id) DO UPDATE SET role = EXCLUDED.role;`,
		member.UserID, member.TenantID, string(member.Role), member.JoinedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewNotFoundError("tenant")
		}
		return apperrors.NewStorageError("failed to add user "+member.UserID+" to tenant "+member.TenantID, err)
	}
	return nil
}

func (r *PgxTenantRepository) FindTenantMember(ctx context.Context, userID, tenantID string) (*domain.TenantMember, error) {
	query := `
		SELECT user_id, tenant_id, role, joined_at
		FROM tenant_members
		WHERE user_id = $1 AND tenant_id = $2;
	`
	var m models.TenantMember
	err := r.Pool.QueryRow(ctx, query, userID, tenantID).Scan(&m.UserID, &m.TenantID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tenant membership")
		}
		return nil, apperrors.NewStorageError("failed to find membership of "+userID+" in "+tenantID, err)
	}
	member := mapping.ToDomainTenantMember(m)
	return &member, nil
}
