package memory

import (
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
)

// NewRepositoryProvider returns repositories that share one empty in-memory store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := newStore()
	return portsrepo.RepositoryProvider{
		TenantRepo:      &tenantRepository{store: s},
		ShareholderRepo: &shareholderRepository{store: s},
		ShareClassRepo:  &shareClassRepository{store: s},
		PositionRepo:    &positionRepository{store: s},
		LedgerRepo:      &ledgerRepository{store: s},
	}
}
