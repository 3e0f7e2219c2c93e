package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	"github.com/SscSPs/share_register/internal/utils/captable"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const tenantID = "tenant-1"

type LedgerRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	seq   int
	now   time.Time
}

func (s *LedgerRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repos = NewRepositoryProvider()
	s.seq = 0
	s.now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	seedShareholders(s.T(), s.repos, "S1", "S2", "S3")
}

func seedShareholders(t *testing.T, repos portsrepo.RepositoryProvider, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, repos.ShareholderRepo.SaveShareholder(context.Background(), domain.Shareholder{
			ShareholderID: id, TenantID: tenantID, Name: "Holder " + id, Type: domain.NaturalPerson,
			IsActive: true, AuditFields: domain.AuditFields{Version: 1},
		}))
	}
}

func (s *LedgerRepositoryTestSuite) nextID() string {
	s.seq++
	return fmt.Sprintf("id-%03d", s.seq)
}

func (s *LedgerRepositoryTestSuite) transaction(txType domain.ShareTransactionType, from *string, to string, first, last int64) domain.ShareTransaction {
	s.now = s.now.Add(time.Minute)
	return domain.ShareTransaction{
		TransactionID:     s.nextID(),
		TenantID:          tenantID,
		Type:              txType,
		TransactionDate:   s.now.Truncate(24 * time.Hour),
		FromShareholderID: from,
		ToShareholderID:   to,
		ShareClass:        "A",
		NumberOfShares:    last - first + 1,
		ShareNumberFrom:   first,
		ShareNumberTo:     last,
		RegisteredBy:      "user-1",
		RegisteredAt:      s.now,
	}
}

// plan computes a plan against the current store contents, as the validator would.
func (s *LedgerRepositoryTestSuite) plan(txn domain.ShareTransaction) domain.PositionPlan {
	active, err := s.repos.PositionRepo.ListActivePositionsByClass(s.ctx, tenantID, txn.ShareClass)
	s.Require().NoError(err)
	plan, err := captable.Plan(txn, active, decimal.NewFromInt(1), s.nextID)
	s.Require().NoError(err)
	return plan
}

func (s *LedgerRepositoryTestSuite) apply(txn domain.ShareTransaction) {
	s.Require().NoError(s.repos.LedgerRepo.ApplyPlan(s.ctx, s.plan(txn)))
}

func (s *LedgerRepositoryTestSuite) TestApplyPlan_IssuanceAndTransfer() {
	s.apply(s.transaction(domain.Issuance, nil, "S1", 1, 1000))
	s.apply(s.transaction(domain.Transfer, strPtr("S1"), "S2", 1, 500))

	active, err := s.repos.PositionRepo.ListActivePositions(s.ctx, tenantID)
	s.Require().NoError(err)
	s.Require().Len(active, 2)
	s.Equal("S2", active[0].ShareholderID)
	s.Equal(domain.ShareRange{From: 1, To: 500}, active[0].Range())
	s.Equal("S1", active[1].ShareholderID)
	s.Equal(domain.ShareRange{From: 501, To: 1000}, active[1].Range())

	history, err := s.repos.PositionRepo.ListPositionsByShareholder(s.ctx, tenantID, "S1")
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.True(history[0].IsActive, "remainder is newest")
	s.False(history[1].IsActive)
	s.Equal(int64(2), history[1].Version, "deactivation bumps the version")
}

func (s *LedgerRepositoryTestSuite) TestApplyPlan_StaleVersionIsConflict() {
	s.apply(s.transaction(domain.Issuance, nil, "S1", 1, 100))

	first := s.plan(s.transaction(domain.Transfer, strPtr("S1"), "S2", 1, 100))
	second := s.plan(s.transaction(domain.Transfer, strPtr("S1"), "S3", 1, 100))

	s.Require().NoError(s.repos.LedgerRepo.ApplyPlan(s.ctx, first))
	err := s.repos.LedgerRepo.ApplyPlan(s.ctx, second)
	s.ErrorIs(err, apperrors.ErrConflict)

	txns, err := s.repos.LedgerRepo.ListTransactionsAscending(s.ctx, tenantID)
	s.Require().NoError(err)
	s.Len(txns, 2, "the losing transaction is not appended")
}

func (s *LedgerRepositoryTestSuite) TestApplyPlan_OverlappingIssuanceIsConflict() {
	s.apply(s.transaction(domain.Issuance, nil, "S1", 1, 100))

	// planned before the first issuance landed
	stale := domain.PositionPlan{
		Transaction: s.transaction(domain.Issuance, nil, "S2", 50, 150),
		Create: []domain.SharePosition{{
			PositionID: s.nextID(), TenantID: tenantID, ShareholderID: "S2", ShareClass: "A",
			ShareNumberFrom: 50, ShareNumberTo: 150, Count: 101, IsActive: true,
		}},
	}
	err := s.repos.LedgerRepo.ApplyPlan(s.ctx, stale)
	s.ErrorIs(err, apperrors.ErrConflict)

	active, err := s.repos.PositionRepo.ListActivePositions(s.ctx, tenantID)
	s.Require().NoError(err)
	s.Len(active, 1)
}

func (s *LedgerRepositoryTestSuite) TestApplyPlan_FailureLeavesNoTrace() {
	s.apply(s.transaction(domain.Issuance, nil, "S1", 1, 100))
	active, _ := s.repos.PositionRepo.ListActivePositions(s.ctx, tenantID)

	plan := domain.PositionPlan{
		Transaction: s.transaction(domain.Transfer, strPtr("S1"), "S2", 1, 100),
		Deactivate: []domain.PositionDeactivation{
			{PositionID: active[0].PositionID, ExpectedVersion: active[0].Version},
			{PositionID: "missing", ExpectedVersion: 1},
		},
	}
	s.ErrorIs(s.repos.LedgerRepo.ApplyPlan(s.ctx, plan), apperrors.ErrConflict)

	after, _ := s.repos.PositionRepo.ListActivePositions(s.ctx, tenantID)
	s.Equal(active, after)
}

func (s *LedgerRepositoryTestSuite) TestApplyPlan_RemovedRecipientIsConflict() {
	plan := s.plan(s.transaction(domain.Issuance, nil, "S1", 1, 10))
	s.Require().NoError(s.repos.ShareholderRepo.DeleteShareholder(s.ctx, tenantID, "S1"))

	s.ErrorIs(s.repos.LedgerRepo.ApplyPlan(s.ctx, plan), apperrors.ErrConflict)

	active, err := s.repos.PositionRepo.ListActivePositions(s.ctx, tenantID)
	s.Require().NoError(err)
	s.Empty(active)
	txns, err := s.repos.LedgerRepo.ListTransactionsAscending(s.ctx, tenantID)
	s.Require().NoError(err)
	s.Empty(txns)
}

func (s *LedgerRepositoryTestSuite) TestApplyPlan_DeactivatedRecipientIsConflict() {
	s.apply(s.transaction(domain.Issuance, nil, "S1", 1, 10))
	plan := s.plan(s.transaction(domain.Transfer, strPtr("S1"), "S2", 1, 10))
	s.Require().NoError(s.repos.ShareholderRepo.DeactivateShareholder(s.ctx, tenantID, "S2", 1, "user-1", s.now))

	s.ErrorIs(s.repos.LedgerRepo.ApplyPlan(s.ctx, plan), apperrors.ErrConflict)

	active, err := s.repos.PositionRepo.ListActivePositions(s.ctx, tenantID)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("S1", active[0].ShareholderID)
}

func (s *LedgerRepositoryTestSuite) TestApplyPlan_BumpsPartyVersions() {
	s.apply(s.transaction(domain.Issuance, nil, "S1", 1, 10))

	holder, err := s.repos.ShareholderRepo.FindShareholderByID(s.ctx, tenantID, "S1")
	s.Require().NoError(err)
	s.Equal(int64(2), holder.Version)

	// a deactivation based on the version read before the issuance must not go through
	err = s.repos.ShareholderRepo.DeactivateShareholder(s.ctx, tenantID, "S1", 1, "user-1", s.now)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.ErrorIs(s.repos.ShareholderRepo.DeleteShareholder(s.ctx, tenantID, "S1"), apperrors.ErrConflict)
}

func (s *LedgerRepositoryTestSuite) TestPositionsHaveNoDirectWritePath() {
	_, creates := s.repos.PositionRepo.(interface {
		CreatePosition(context.Context, domain.SharePosition) error
	})
	s.False(creates, "positions are written by ApplyPlan only")
}

func (s *LedgerRepositoryTestSuite) TestListTransactions_Pagination() {
	for i := int64(0); i < 5; i++ {
		s.apply(s.transaction(domain.Issuance, nil, "S1", i*10+1, i*10+10))
	}

	page1, token, err := s.repos.LedgerRepo.ListTransactions(s.ctx, tenantID, 2, nil)
	s.Require().NoError(err)
	s.Require().NotNil(token)
	s.Require().Len(page1, 2)
	s.Equal(int64(41), page1[0].ShareNumberFrom, "newest first")

	page2, token, err := s.repos.LedgerRepo.ListTransactions(s.ctx, tenantID, 2, token)
	s.Require().NoError(err)
	s.Require().Len(page2, 2)
	s.Equal(int64(21), page2[0].ShareNumberFrom)

	page3, token, err := s.repos.LedgerRepo.ListTransactions(s.ctx, tenantID, 2, token)
	s.Require().NoError(err)
	s.Len(page3, 1)
	s.Nil(token)

	all, token, err := s.repos.LedgerRepo.ListTransactions(s.ctx, tenantID, 0, nil)
	s.Require().NoError(err)
	s.Len(all, 5)
	s.Nil(token)

	bad := "%%%"
	_, _, err = s.repos.LedgerRepo.ListTransactions(s.ctx, tenantID, 2, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerRepositoryTestSuite) TestTenantsAreIsolated() {
	s.apply(s.transaction(domain.Issuance, nil, "S1", 1, 10))

	other, err := s.repos.PositionRepo.ListActivePositions(s.ctx, "tenant-2")
	s.Require().NoError(err)
	s.Empty(other)

	txns, err := s.repos.LedgerRepo.ListTransactionsAscending(s.ctx, "tenant-2")
	s.Require().NoError(err)
	s.Empty(txns)

	_, err = s.repos.LedgerRepo.FindTransactionByID(s.ctx, "tenant-2", "id-001")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryTestSuite))
}

func TestApplyPlan_ConcurrentTransfersOfSameRange(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider()
	registeredAt := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	seedShareholders(t, repos, "S1", "R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7")

	issue := domain.PositionPlan{
		Transaction: domain.ShareTransaction{TransactionID: "issue", TenantID: tenantID, Type: domain.Issuance,
			ToShareholderID: "S1", ShareClass: "A", NumberOfShares: 100, ShareNumberFrom: 1, ShareNumberTo: 100, RegisteredAt: registeredAt},
		Create: []domain.SharePosition{{PositionID: "p1", TenantID: tenantID, ShareholderID: "S1", ShareClass: "A",
			ShareNumberFrom: 1, ShareNumberTo: 100, Count: 100, IsActive: true, AuditFields: domain.AuditFields{Version: 1}}},
	}
	require.NoError(t, repos.LedgerRepo.ApplyPlan(ctx, issue))

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			recipient := fmt.Sprintf("R%d", i)
			errs[i] = repos.LedgerRepo.ApplyPlan(ctx, domain.PositionPlan{
				Transaction: domain.ShareTransaction{TransactionID: "t-" + recipient, TenantID: tenantID, Type: domain.Transfer,
					FromShareholderID: strPtr("S1"), ToShareholderID: recipient, ShareClass: "A", NumberOfShares: 100,
					ShareNumberFrom: 1, ShareNumberTo: 100, RegisteredAt: registeredAt.Add(time.Second)},
				Deactivate: []domain.PositionDeactivation{{PositionID: "p1", ExpectedVersion: 1}},
				Create: []domain.SharePosition{{PositionID: "p-" + recipient, TenantID: tenantID, ShareholderID: recipient,
					ShareClass: "A", ShareNumberFrom: 1, ShareNumberTo: 100, Count: 100, IsActive: true}},
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	}
	assert.Equal(t, 1, succeeded)

	active, err := repos.PositionRepo.ListActivePositions(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.NotEqual(t, "S1", active[0].ShareholderID)
}

func strPtr(s string) *string { return &s }
