package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/core/services"
	"github.com/SscSPs/share_register/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDefineShareClass_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateShareClassRequest
	}{
		{"blank label", dto.CreateShareClassRequest{Label: " ", VotesPerShare: decimal.NewFromInt(1)}},
		{"zero votes", dto.CreateShareClassRequest{Label: "A", VotesPerShare: decimal.Zero}},
		{"negative votes", dto.CreateShareClassRequest{Label: "A", VotesPerShare: decimal.NewFromInt(-1)}},
		{"negative nominal", dto.CreateShareClassRequest{Label: "A", VotesPerShare: decimal.NewFromInt(1), NominalValue: decimal.NewFromFloat(-0.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockShareClassRepository)
			svc := services.NewShareClassService(repo)

			_, err := svc.DefineShareClass(context.Background(), "t1", tt.req, "admin")

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			repo.AssertNotCalled(t, "SaveShareClass", mock.Anything, mock.Anything)
		})
	}
}

func TestDefineShareClass_FractionalVotes(t *testing.T) {
	ctx := context.Background()
	repo := new(MockShareClassRepository)
	svc := services.NewShareClassService(repo)
	repo.On("SaveShareClass", ctx, mock.MatchedBy(func(c domain.ShareClass) bool {
		return c.Label == "B" && c.VotesPerShare.Equal(decimal.NewFromFloat(0.1))
	})).Return(nil).Once()

	class, err := svc.DefineShareClass(ctx, "t1", dto.CreateShareClassRequest{
		Label: "B", VotesPerShare: decimal.NewFromFloat(0.1), NominalValue: decimal.Zero,
	}, "admin")

	require.NoError(t, err)
	assert.Equal(t, "t1", class.TenantID)
	repo.AssertExpectations(t)
}

func TestGetShareClass_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockShareClassRepository)
	svc := services.NewShareClassService(repo)
	repo.On("FindShareClass", ctx, "t1", "Z").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetShareClass(ctx, "t1", "Z", "viewer")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "share class not found", apperrors.Message(err))
}
