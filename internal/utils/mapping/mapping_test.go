package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/models"
	"github.com/SscSPs/share_register/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestShareholderContactIsFlattened(t *testing.T) {
	sh := domain.Shareholder{
		ShareholderID: "S1",
		Name:          "Anna",
		Type:          domain.NaturalPerson,
		Contact:       domain.ContactInfo{Email: "anna@example.se", Phone: "+46 70 000 00 00", Address: "Storgatan 1"},
	}

	m := mapping.ToModelShareholder(sh)
	assert.Equal(t, "anna@example.se", m.Email)
	assert.Equal(t, "Storgatan 1", m.Address)
	assert.Equal(t, "NATURAL_PERSON", m.Type)
	assert.Equal(t, sh, mapping.ToDomainShareholder(m))
}

func TestToDomainSlicesNeverNil(t *testing.T) {
	assert.NotNil(t, mapping.ToDomainSharePositions(nil))
	assert.NotNil(t, mapping.ToDomainShareTransactions(nil))
	assert.Empty(t, mapping.ToDomainShareholders([]models.Shareholder{}))
}

func TestTransactionOptionalFieldsSurvive(t *testing.T) {
	from := "S1"
	decision := "D-2024-03"
	d := domain.ShareTransaction{
		TransactionID:     "tx",
		Type:              domain.Transfer,
		TransactionDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		FromShareholderID: &from,
		DecisionID:        &decision,
	}

	m := mapping.ToModelShareTransaction(d)
	assert.Equal(t, "TRANSFER", m.TransactionType)
	assert.Equal(t, &from, m.FromShareholderID)
	assert.Nil(t, m.MeetingID)
}
