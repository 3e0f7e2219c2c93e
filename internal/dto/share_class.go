package dto

import (
	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShareClassRequest defines a share class of a tenant.
type CreateShareClassRequest struct {
	Label         string          `json:"label" binding:"required,max=16"`
	VotesPerShare decimal.Decimal `json:"votesPerShare" binding:"decimalgt0"`
	NominalValue  decimal.Decimal `json:"nominalValue" binding:"decimalgte0"`
	Description   string          `json:"description"`
}

// ShareClassResponse defines the data returned for a share class.
type ShareClassResponse struct {
	Label         string          `json:"label"`
	VotesPerShare decimal.Decimal `json:"votesPerShare"`
	NominalValue  decimal.Decimal `json:"nominalValue"`
	Description   string          `json:"description"`
}

// ToShareClassResponse converts a domain.ShareClass to its DTO
func ToShareClassResponse(c *domain.ShareClass) ShareClassResponse {
	return ShareClassResponse{
		Label:         c.Label,
		VotesPerShare: c.VotesPerShare,
		NominalValue:  c.NominalValue,
		Description:   c.Description,
	}
}

// ToListShareClassResponse converts a slice of domain.ShareClass to DTOs
func ToListShareClassResponse(classes []domain.ShareClass) []ShareClassResponse {
	res := make([]ShareClassResponse, len(classes))
	for i := range classes {
		res[i] = ToShareClassResponse(&classes[i])
	}
	return res
}
