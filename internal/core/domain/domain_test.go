package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShareTransactionType_Capabilities(t *testing.T) {
	tests := []struct {
		txType         domain.ShareTransactionType
		requiresSource bool
		createsShares  bool
		givesRecipient bool
	}{
		{domain.Issuance, false, true, true},
		{domain.Transfer, true, false, true},
		{domain.Redemption, true, false, false},
		{domain.Split, false, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			assert.True(t, tt.txType.IsValid())
			assert.Equal(t, tt.requiresSource, tt.txType.RequiresSource())
			assert.Equal(t, tt.createsShares, tt.txType.CreatesShares())
			assert.Equal(t, tt.givesRecipient, tt.txType.GivesRecipientPosition())
		})
	}

	assert.False(t, domain.ShareTransactionType("GIFT").IsValid())
}

func TestTenantRole_Satisfies(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Satisfies(domain.RoleMember))
	assert.True(t, domain.RoleMember.Satisfies(domain.RoleReadOnly))
	assert.True(t, domain.RoleReadOnly.Satisfies(domain.RoleReadOnly))
	assert.False(t, domain.RoleReadOnly.Satisfies(domain.RoleMember))
	assert.False(t, domain.RoleMember.Satisfies(domain.RoleAdmin))
	assert.False(t, domain.TenantRole("OWNER").Satisfies(domain.RoleReadOnly))
}

func TestSharePosition_Validate(t *testing.T) {
	p := domain.SharePosition{PositionID: "p1", ShareNumberFrom: 1, ShareNumberTo: 1000, Count: 1000, NominalValue: decimal.NewFromFloat(0.5)}
	assert.NoError(t, p.Validate())
	assert.True(t, decimal.NewFromInt(500).Equal(p.ShareCapital()))

	p.Count = 999
	assert.Error(t, p.Validate())
}

func TestShareClassIndex_VotesPerShare(t *testing.T) {
	idx := domain.NewShareClassIndex([]domain.ShareClass{{Label: "B", VotesPerShare: decimal.NewFromInt(10)}})

	assert.True(t, decimal.NewFromInt(10).Equal(idx.VotesPerShare("B")))
	assert.True(t, domain.DefaultVotesPerShare.Equal(idx.VotesPerShare("unknown")))
}

func TestCalendarDate(t *testing.T) {
	late := time.Date(2024, 1, 10, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), domain.CalendarDate(late))

	early := time.Date(2024, 1, 11, 0, 30, 0, 0, time.FixedZone("CET", 60*60))
	assert.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), domain.CalendarDate(early))
}
