package domain

import "github.com/shopspring/decimal"

// DefaultVotesPerShare applies to positions whose class has no metadata.
var DefaultVotesPerShare = decimal.NewFromInt(1)

// ShareClass is a label ("A", "B") with its voting multiplier and nominal value.
// Aggregates per class are always derived, never stored.
type ShareClass struct {
	TenantID      string          `json:"tenantID"`
	Label         string          `json:"label"`
	VotesPerShare decimal.Decimal `json:"votesPerShare"`
	NominalValue  decimal.Decimal `json:"nominalValue"` // per share
	Description   string          `json:"description"`
	AuditFields
}

// ShareClassIndex maps class labels to their metadata.
type ShareClassIndex map[string]ShareClass

// VotesPerShare returns the voting multiplier for label, falling back to DefaultVotesPerShare.
func (idx ShareClassIndex) VotesPerShare(label string) decimal.Decimal {
	if c, ok := idx[label]; ok {
		return c.VotesPerShare
	}
	return DefaultVotesPerShare
}

// NewShareClassIndex indexes classes by label.
func NewShareClassIndex(classes []ShareClass) ShareClassIndex {
	idx := make(ShareClassIndex, len(classes))
	for _, c := range classes {
		idx[c.Label] = c
	}
	return idx
}
