package models

import "github.com/shopspring/decimal"

// ShareClass is a row of the share_classes table.
type ShareClass struct {
	TenantID      string          `db:"tenant_id"`
	Label         string          `db:"label"`
	VotesPerShare decimal.Decimal `db:"votes_per_share"`
	NominalValue  decimal.Decimal `db:"nominal_value"`
	Description   string          `db:"description"`
	AuditFields
}
