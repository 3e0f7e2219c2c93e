package models

import "time"

// Tenant is a row of the tenants table.
type Tenant struct {
	TenantID           string `db:"tenant_id"`
	Name               string `db:"name"`
	OrganisationNumber string `db:"organisation_number"`
	Description        string `db:"description"`
	IsActive           bool   `db:"is_active"`
	AuditFields
}

// TenantMember is a row of the tenant_members table.
type TenantMember struct {
	UserID   string    `db:"user_id"`
	TenantID string    `db:"tenant_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
