package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SharePosition is a contiguous block of shares currently (or formerly) owned by one shareholder.
// Positions are a projection of the ledger: they are only created and deactivated by applying
// a ShareTransaction, never edited directly.
type SharePosition struct {
	PositionID       string           `json:"positionID"`
	TenantID         string           `json:"tenantID"`
	ShareholderID    string           `json:"shareholderID"`
	ShareClass       string           `json:"shareClass"`
	ShareNumberFrom  int64            `json:"shareNumberFrom"`
	ShareNumberTo    int64            `json:"shareNumberTo"`
	Count            int64            `json:"count"`
	NominalValue     decimal.Decimal  `json:"nominalValue"` // per share
	AcquisitionPrice *decimal.Decimal `json:"acquisitionPrice,omitempty"`
	AcquisitionDate  time.Time        `json:"acquisitionDate"`
	TransactionID    string           `json:"transactionID"` // originating ledger entry
	IsActive         bool             `json:"isActive"`
	AuditFields
}

// Range returns the share numbers covered by the position.
func (p SharePosition) Range() ShareRange {
	return ShareRange{From: p.ShareNumberFrom, To: p.ShareNumberTo}
}

// ShareCapital returns nominal value times count.
func (p SharePosition) ShareCapital() decimal.Decimal {
	return p.NominalValue.Mul(decimal.NewFromInt(p.Count))
}

// Validate checks the count/range invariant.
func (p SharePosition) Validate() error {
	if !p.Range().IsValid() {
		return fmt.Errorf("position %s has invalid range %s", p.PositionID, p.Range())
	}
	if p.Count != p.Range().Count() {
		return fmt.Errorf("position %s count %d does not match range %s", p.PositionID, p.Count, p.Range())
	}
	return nil
}
