package dto

import (
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
)

// --- Tenant DTOs ---

// CreateTenantRequest defines data for registering a company.
type CreateTenantRequest struct {
	Name               string `json:"name" binding:"required,max=255"`
	OrganisationNumber string `json:"organisationNumber" binding:"max=32"`
	Description        string `json:"description"`
}

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID           string    `json:"tenantID"`
	Name               string    `json:"name"`
	OrganisationNumber string    `json:"organisationNumber"`
	Description        string    `json:"description"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:           t.TenantID,
		Name:               t.Name,
		OrganisationNumber: t.OrganisationNumber,
		Description:        t.Description,
		IsActive:           t.IsActive,
		CreatedAt:          t.CreatedAt,
		CreatedBy:          t.CreatedBy,
	}
}

// ListTenantsResponse wraps a list of tenants.
type ListTenantsResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

// ToListTenantsResponse converts a slice of domain.Tenant to DTO.
func ToListTenantsResponse(ts []domain.Tenant) ListTenantsResponse {
	list := make([]TenantResponse, len(ts))
	for i := range ts {
		list[i] = ToTenantResponse(&ts[i])
	}
	return ListTenantsResponse{Tenants: list}
}

// --- Membership DTOs ---

// AddTenantMemberRequest defines data for adding a user to a tenant.
type AddTenantMemberRequest struct {
	UserID string            `json:"userID" binding:"required"`
	Role   domain.TenantRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// TenantMemberResponse defines data returned about a membership.
type TenantMemberResponse struct {
	UserID   string            `json:"userID"`
	TenantID string            `json:"tenantID"`
	Role     domain.TenantRole `json:"role"`
	JoinedAt time.Time         `json:"joinedAt"`
}

// ToTenantMemberResponse converts domain.TenantMember to DTO.
func ToTenantMemberResponse(m *domain.TenantMember) TenantMemberResponse {
	return TenantMemberResponse{
		UserID:   m.UserID,
		TenantID: m.TenantID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}
