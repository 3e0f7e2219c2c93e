package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShareTransactionType is the closed set of ownership-changing events.
type ShareTransactionType string

const (
	Issuance   ShareTransactionType = "ISSUANCE"
	Transfer   ShareTransactionType = "TRANSFER"
	Redemption ShareTransactionType = "REDEMPTION"
	Split      ShareTransactionType = "SPLIT"
)

// IsValid reports whether t is a known transaction type.
func (t ShareTransactionType) IsValid() bool {
	switch t {
	case Issuance, Transfer, Redemption, Split:
		return true
	}
	return false
}

// RequiresSource reports whether the transaction moves shares away from an existing holder.
func (t ShareTransactionType) RequiresSource() bool {
	return t == Transfer || t == Redemption
}

// CreatesShares reports whether the transaction brings fresh share numbers into existence.
func (t ShareTransactionType) CreatesShares() bool {
	return t == Issuance || t == Split
}

// GivesRecipientPosition reports whether the recipient receives a new position.
func (t ShareTransactionType) GivesRecipientPosition() bool {
	return t != Redemption
}

// ShareTransaction is an immutable ledger entry. Once appended it is never updated or deleted.
type ShareTransaction struct {
	TransactionID     string               `json:"transactionID"`
	TenantID          string               `json:"tenantID"`
	Type              ShareTransactionType `json:"type"`
	TransactionDate   time.Time            `json:"transactionDate"`
	Description       string               `json:"description"`
	FromShareholderID *string              `json:"fromShareholderID,omitempty"`
	ToShareholderID   string               `json:"toShareholderID"`
	ShareClass        string               `json:"shareClass"`
	NumberOfShares    int64                `json:"numberOfShares"`
	ShareNumberFrom   int64                `json:"shareNumberFrom"`
	ShareNumberTo     int64                `json:"shareNumberTo"`
	PricePerShare     *decimal.Decimal     `json:"pricePerShare,omitempty"`
	TotalAmount       *decimal.Decimal     `json:"totalAmount,omitempty"`
	DecisionID        *string              `json:"decisionID,omitempty"`
	MeetingID         *string              `json:"meetingID,omitempty"`
	RegisteredBy      string               `json:"registeredBy"`
	RegisteredAt      time.Time            `json:"registeredAt"`
}

// Range returns the share numbers the transaction refers to.
func (t ShareTransaction) Range() ShareRange {
	return ShareRange{From: t.ShareNumberFrom, To: t.ShareNumberTo}
}

// SourceShareholderID returns the from-shareholder or "" when absent.
func (t ShareTransaction) SourceShareholderID() string {
	if t.FromShareholderID == nil {
		return ""
	}
	return *t.FromShareholderID
}

// CalendarDate drops the clock and offset of t, keeping the date as written, at UTC midnight.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
