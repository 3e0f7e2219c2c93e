package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClassHolding is one shareholder's holding in one share class.
type ClassHolding struct {
	ShareClass   string          `json:"shareClass"`
	Shares       int64           `json:"shares"`
	Votes        decimal.Decimal `json:"votes"`
	ShareCapital decimal.Decimal `json:"shareCapital"`
}

// ShareholderHolding is one row of the cap table.
type ShareholderHolding struct {
	ShareholderID       string          `json:"shareholderID"`
	Name                string          `json:"name"`
	Type                ShareholderType `json:"type"`
	TotalShares         int64           `json:"totalShares"`
	TotalVotes          decimal.Decimal `json:"totalVotes"`
	OwnershipPercentage decimal.Decimal `json:"ownershipPercentage"`
	VotingPercentage    decimal.Decimal `json:"votingPercentage"`
	ShareCapital        decimal.Decimal `json:"shareCapital"`
	Classes             []ClassHolding  `json:"classes"`
}

// ClassSummary aggregates one share class across all shareholders.
type ClassSummary struct {
	ShareClass    string          `json:"shareClass"`
	VotesPerShare decimal.Decimal `json:"votesPerShare"`
	TotalShares   int64           `json:"totalShares"`
	TotalVotes    decimal.Decimal `json:"totalVotes"`
	Percentage    decimal.Decimal `json:"percentage"` // of all outstanding shares
	ShareCapital  decimal.Decimal `json:"shareCapital"`
}

// CapTableSummary is the derived ownership snapshot. It is computed on read and never persisted.
type CapTableSummary struct {
	TenantID          string               `json:"tenantID"`
	AsOf              *time.Time           `json:"asOf,omitempty"`
	Shareholders      []ShareholderHolding `json:"shareholders"`
	Classes           []ClassSummary       `json:"classes"`
	TotalShares       int64                `json:"totalShares"`
	TotalVotes        decimal.Decimal      `json:"totalVotes"`
	TotalShareCapital decimal.Decimal      `json:"totalShareCapital"`
}

// Holding returns the row for shareholderID, if present.
func (s CapTableSummary) Holding(shareholderID string) (ShareholderHolding, bool) {
	for _, h := range s.Shareholders {
		if h.ShareholderID == shareholderID {
			return h, true
		}
	}
	return ShareholderHolding{}, false
}

// DiscrepancyKind tells which side of a register verification a range is missing from.
type DiscrepancyKind string

const (
	MissingInStore    DiscrepancyKind = "MISSING_IN_STORE"    // the ledger implies it, the store lacks it
	UnexpectedInStore DiscrepancyKind = "UNEXPECTED_IN_STORE" // the store has it, the ledger does not imply it
)

// RegisterDiscrepancy is one active range on which the position store and a ledger replay disagree.
type RegisterDiscrepancy struct {
	Kind          DiscrepancyKind `json:"kind"`
	ShareholderID string          `json:"shareholderID"`
	ShareClass    string          `json:"shareClass"`
	Range         ShareRange      `json:"range"`
}

// RegisterVerification is the outcome of comparing the position store with a ledger replay.
type RegisterVerification struct {
	TenantID         string                `json:"tenantID"`
	Consistent       bool                  `json:"consistent"`
	TransactionCount int                   `json:"transactionCount"`
	ActivePositions  int                   `json:"activePositions"`
	Discrepancies    []RegisterDiscrepancy `json:"discrepancies"`
	ReplayError      string                `json:"replayError,omitempty"` // set when the ledger itself cannot be replayed
}
