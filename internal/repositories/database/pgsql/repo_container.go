package pgsql

import (
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	tenantRepo := newPgxTenantRepository(dbPool)
	shareholderRepo := newPgxShareholderRepository(dbPool)
	shareClassRepo := newPgxShareClassRepository(dbPool)
	positionRepo := newPgxPositionRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TenantRepo:      tenantRepo,
		ShareholderRepo: shareholderRepo,
		ShareClassRepo:  shareClassRepo,
		PositionRepo:    positionRepo,
		LedgerRepo:      ledgerRepo,
	}
}
