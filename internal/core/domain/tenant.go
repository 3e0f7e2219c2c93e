package domain

import "time"

// Tenant is one company whose share register is kept by the portal.
// Every other entity is scoped by TenantID.
type Tenant struct {
	TenantID           string `json:"tenantID"`
	Name               string `json:"name"`
	OrganisationNumber string `json:"organisationNumber"`
	Description        string `json:"description"`
	IsActive           bool   `json:"isActive"`
	AuditFields
}

// TenantRole defines the possible roles a user can have within a tenant.
type TenantRole string

const (
	RoleAdmin    TenantRole = "ADMIN"
	RoleMember   TenantRole = "MEMBER"
	RoleReadOnly TenantRole = "READONLY"
)

var roleRank = map[TenantRole]int{
	RoleReadOnly: 1,
	RoleMember:   2,
	RoleAdmin:    3,
}

// IsValid reports whether r is a known role.
func (r TenantRole) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// Satisfies reports whether a member holding r may perform an action requiring required.
func (r TenantRole) Satisfies(required TenantRole) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// TenantMember represents the membership of a user in a tenant.
type TenantMember struct {
	UserID   string     `json:"userID"`
	TenantID string     `json:"tenantID"`
	Role     TenantRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}
