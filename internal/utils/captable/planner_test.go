package captable_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/utils/captable"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() captable.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func txn(txType domain.ShareTransactionType, from *string, to, class string, first, last int64) domain.ShareTransaction {
	return domain.ShareTransaction{
		TransactionID:     "tx-1",
		TenantID:          tenantID,
		Type:              txType,
		TransactionDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		FromShareholderID: from,
		ToShareholderID:   to,
		ShareClass:        class,
		NumberOfShares:    last - first + 1,
		ShareNumberFrom:   first,
		ShareNumberTo:     last,
		RegisteredBy:      "user-1",
		RegisteredAt:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func ptr(s string) *string { return &s }

func TestPlan_Issuance(t *testing.T) {
	plan, err := captable.Plan(txn(domain.Issuance, nil, "S1", "A", 1, 1000), nil, decimal.NewFromInt(1), sequentialIDs())

	require.NoError(t, err)
	assert.Empty(t, plan.Deactivate)
	require.Len(t, plan.Create, 1)
	p := plan.Create[0]
	assert.Equal(t, "S1", p.ShareholderID)
	assert.Equal(t, int64(1000), p.Count)
	assert.True(t, p.IsActive)
	assert.Equal(t, "tx-1", p.TransactionID)
	assert.NoError(t, p.Validate())
}

func TestPlan_IssuanceOverlappingActiveRange(t *testing.T) {
	active := []domain.SharePosition{position("p1", "S1", "A", 1, 1000)}

	_, err := captable.Plan(txn(domain.Issuance, nil, "S2", "A", 900, 1100), active, decimal.NewFromInt(1), sequentialIDs())
	assert.ErrorIs(t, err, captable.ErrRangeAlreadyIssued)

	// same numbers in another class are fine
	_, err = captable.Plan(txn(domain.Issuance, nil, "S2", "B", 900, 1100), active, decimal.NewFromInt(1), sequentialIDs())
	assert.NoError(t, err)
}

func TestPlan_WholePositionTransfer(t *testing.T) {
	active := []domain.SharePosition{position("p1", "S1", "A", 1, 1000)}

	plan, err := captable.Plan(txn(domain.Transfer, ptr("S1"), "S2", "A", 1, 1000), active, decimal.NewFromInt(1), sequentialIDs())

	require.NoError(t, err)
	assert.Equal(t, []domain.PositionDeactivation{{PositionID: "p1", ExpectedVersion: 1}}, plan.Deactivate)
	require.Len(t, plan.Create, 1)
	assert.Equal(t, "S2", plan.Create[0].ShareholderID)
	assert.Equal(t, domain.ShareRange{From: 1, To: 1000}, plan.Create[0].Range())
}

func TestPlan_PartialTransferSplitsSource(t *testing.T) {
	active := []domain.SharePosition{position("p1", "S1", "A", 1, 1000)}

	plan, err := captable.Plan(txn(domain.Transfer, ptr("S1"), "S2", "A", 501, 1000), active, decimal.NewFromInt(1), sequentialIDs())

	require.NoError(t, err)
	require.Len(t, plan.Deactivate, 1)
	require.Len(t, plan.Create, 2)
	assert.Equal(t, "S1", plan.Create[0].ShareholderID)
	assert.Equal(t, domain.ShareRange{From: 1, To: 500}, plan.Create[0].Range())
	assert.Equal(t, "S2", plan.Create[1].ShareholderID)
	assert.Equal(t, domain.ShareRange{From: 501, To: 1000}, plan.Create[1].Range())
}

func TestPlan_MiddleTransferLeavesTwoRemainders(t *testing.T) {
	active := []domain.SharePosition{position("p1", "S1", "A", 1, 1000)}

	plan, err := captable.Plan(txn(domain.Transfer, ptr("S1"), "S2", "A", 400, 599), active, decimal.NewFromInt(1), sequentialIDs())

	require.NoError(t, err)
	require.Len(t, plan.Create, 3)
	assert.Equal(t, domain.ShareRange{From: 1, To: 399}, plan.Create[0].Range())
	assert.Equal(t, domain.ShareRange{From: 600, To: 1000}, plan.Create[1].Range())
	assert.Equal(t, domain.ShareRange{From: 400, To: 599}, plan.Create[2].Range())

	var total int64
	for _, p := range plan.Create {
		total += p.Count
	}
	assert.Equal(t, int64(1000), total)
}

func TestPlan_TransferSpanningTwoPositions(t *testing.T) {
	active := []domain.SharePosition{
		position("p2", "S1", "A", 501, 1000),
		position("p1", "S1", "A", 1, 500),
	}

	plan, err := captable.Plan(txn(domain.Transfer, ptr("S1"), "S2", "A", 401, 600), active, decimal.NewFromInt(1), sequentialIDs())

	require.NoError(t, err)
	assert.Len(t, plan.Deactivate, 2)
	require.Len(t, plan.Create, 3)
	assert.Equal(t, domain.ShareRange{From: 1, To: 400}, plan.Create[0].Range())
	assert.Equal(t, domain.ShareRange{From: 601, To: 1000}, plan.Create[1].Range())
	assert.Equal(t, domain.ShareRange{From: 401, To: 600}, plan.Create[2].Range())
}

func TestPlan_TransferOfSharesNotHeld(t *testing.T) {
	active := []domain.SharePosition{
		position("p1", "S1", "A", 1, 500),
		position("p2", "S3", "A", 501, 1000),
	}

	tests := []struct {
		name string
		tx   domain.ShareTransaction
	}{
		{name: "held by someone else", tx: txn(domain.Transfer, ptr("S1"), "S2", "A", 400, 600)},
		{name: "partly unissued", tx: txn(domain.Transfer, ptr("S1"), "S2", "A", 1, 2000)},
		{name: "nothing held", tx: txn(domain.Redemption, ptr("S2"), "S2", "A", 1, 10)},
		{name: "wrong class", tx: txn(domain.Transfer, ptr("S1"), "S2", "B", 1, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := captable.Plan(tt.tx, active, decimal.NewFromInt(1), sequentialIDs())
			assert.ErrorIs(t, err, captable.ErrRangeNotHeld)
		})
	}
}

func TestPlan_RedemptionCreatesNoRecipientPosition(t *testing.T) {
	active := []domain.SharePosition{position("p1", "S1", "A", 1, 500)}

	plan, err := captable.Plan(txn(domain.Redemption, ptr("S1"), "S1", "A", 1, 500), active, decimal.NewFromInt(1), sequentialIDs())

	require.NoError(t, err)
	assert.Len(t, plan.Deactivate, 1)
	assert.Empty(t, plan.Create)
}

func TestPlan_RemainderKeepsAcquisitionData(t *testing.T) {
	price := decimal.NewFromInt(25)
	src := position("p1", "S1", "A", 1, 100)
	src.AcquisitionPrice = &price
	src.AcquisitionDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	plan, err := captable.Plan(txn(domain.Transfer, ptr("S1"), "S2", "A", 51, 100), []domain.SharePosition{src}, decimal.NewFromInt(1), sequentialIDs())

	require.NoError(t, err)
	remainder := plan.Create[0]
	assert.Equal(t, src.AcquisitionDate, remainder.AcquisitionDate)
	require.NotNil(t, remainder.AcquisitionPrice)
	assert.True(t, price.Equal(*remainder.AcquisitionPrice))
}
