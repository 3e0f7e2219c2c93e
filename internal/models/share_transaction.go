package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShareTransaction is a row of the append-only share_transactions table.
type ShareTransaction struct {
	TransactionID     string           `db:"transaction_id"`
	TenantID          string           `db:"tenant_id"`
	TransactionType   string           `db:"transaction_type"`
	TransactionDate   time.Time        `db:"transaction_date"`
	Description       string           `db:"description"`
	FromShareholderID *string          `db:"from_shareholder_id"`
	ToShareholderID   string           `db:"to_shareholder_id"`
	ShareClass        string           `db:"share_class"`
	NumberOfShares    int64            `db:"number_of_shares"`
	ShareNumberFrom   int64            `db:"share_number_from"`
	ShareNumberTo     int64            `db:"share_number_to"`
	PricePerShare     *decimal.Decimal `db:"price_per_share"`
	TotalAmount       *decimal.Decimal `db:"total_amount"`
	DecisionID        *string          `db:"decision_id"`
	MeetingID         *string          `db:"meeting_id"`
	RegisteredBy      string           `db:"registered_by"`
	RegisteredAt      time.Time        `db:"registered_at"`
}
