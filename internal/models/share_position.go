package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SharePosition is a row of the shares table.
// The share_range column is generated by the database and not mapped here.
type SharePosition struct {
	PositionID       string           `db:"position_id"`
	TenantID         string           `db:"tenant_id"`
	ShareholderID    string           `db:"shareholder_id"`
	ShareClass       string           `db:"share_class"`
	ShareNumberFrom  int64            `db:"share_number_from"`
	ShareNumberTo    int64            `db:"share_number_to"`
	Count            int64            `db:"share_count"`
	NominalValue     decimal.Decimal  `db:"nominal_value"`
	AcquisitionPrice *decimal.Decimal `db:"acquisition_price"`
	AcquisitionDate  time.Time        `db:"acquisition_date"`
	TransactionID    string           `db:"transaction_id"`
	IsActive         bool             `db:"is_active"`
	AuditFields
}
