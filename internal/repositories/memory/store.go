// Package memory holds a process-local implementation of the repository ports.
// It backs STORAGE_DRIVER=memory and the service scenario tests, and keeps the
// same conflict semantics as the PostgreSQL repositories.
package memory

import (
	"sync"

	"github.com/SscSPs/share_register/internal/core/domain"
)

type scopedKey struct {
	tenantID string
	id       string
}

// store is shared by every repository of one provider so ApplyPlan can change
// positions and the ledger under a single lock.
type store struct {
	mu           sync.RWMutex
	tenants      map[string]domain.Tenant
	members      map[scopedKey]domain.TenantMember // id is the user id
	shareholders map[scopedKey]domain.Shareholder
	classes      map[scopedKey]domain.ShareClass // id is the class label
	positions    map[string]domain.SharePosition
	ledger       []domain.ShareTransaction // application order
	ledgerIndex  map[string]int
}

func newStore() *store {
	return &store{
		tenants:      make(map[string]domain.Tenant),
		members:      make(map[scopedKey]domain.TenantMember),
		shareholders: make(map[scopedKey]domain.Shareholder),
		classes:      make(map[scopedKey]domain.ShareClass),
		positions:    make(map[string]domain.SharePosition),
		ledgerIndex:  make(map[string]int),
	}
}

// overlapsActive reports the first active position of the class that overlaps r, ignoring the ids in skip.
// Callers must hold the lock.
func (s *store) overlapsActive(tenantID, class string, r domain.ShareRange, skip map[string]bool) (domain.SharePosition, bool) {
	for id, p := range s.positions {
		if skip[id] || !p.IsActive || p.TenantID != tenantID || p.ShareClass != class {
			continue
		}
		if p.Range().Overlaps(r) {
			return p, true
		}
	}
	return domain.SharePosition{}, false
}
