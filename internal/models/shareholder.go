package models

// Shareholder is a row of the shareholders table.
type Shareholder struct {
	ShareholderID  string `db:"shareholder_id"`
	TenantID       string `db:"tenant_id"`
	Name           string `db:"name"`
	Type           string `db:"shareholder_type"`
	IdentityNumber string `db:"identity_number"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	Address        string `db:"address"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
