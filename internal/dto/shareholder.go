package dto

import (
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShareholderRequest defines the data needed to add a shareholder to the directory.
type CreateShareholderRequest struct {
	Name           string                 `json:"name" binding:"required,max=255"`
	Type           domain.ShareholderType `json:"type" binding:"required,oneof=NATURAL_PERSON LEGAL_PERSON"`
	IdentityNumber string                 `json:"identityNumber" binding:"max=32"`
	Email          string                 `json:"email" binding:"omitempty,email"`
	Phone          string                 `json:"phone" binding:"max=64"`
	Address        string                 `json:"address"`
}

// UpdateShareholderRequest defines the fields that may change after creation.
// Pointers distinguish fields not provided from zero values.
type UpdateShareholderRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=64"`
	Address *string `json:"address"`
}

// ShareholderResponse defines the data returned for a shareholder.
type ShareholderResponse struct {
	ShareholderID  string                 `json:"shareholderID"`
	TenantID       string                 `json:"tenantID"`
	Name           string                 `json:"name"`
	Type           domain.ShareholderType `json:"type"`
	IdentityNumber string                 `json:"identityNumber"`
	Email          string                 `json:"email,omitempty"`
	Phone          string                 `json:"phone,omitempty"`
	Address        string                 `json:"address,omitempty"`
	IsActive       bool                   `json:"isActive"`
	CreatedAt      time.Time              `json:"createdAt"`
	LastUpdatedAt  time.Time              `json:"lastUpdatedAt"`
	Version        int64                  `json:"version"`
}

// ToShareholderResponse converts a domain.Shareholder to its DTO
func ToShareholderResponse(s *domain.Shareholder) ShareholderResponse {
	return ShareholderResponse{
		ShareholderID:  s.ShareholderID,
		TenantID:       s.TenantID,
		Name:           s.Name,
		Type:           s.Type,
		IdentityNumber: s.IdentityNumber,
		Email:          s.Contact.Email,
		Phone:          s.Contact.Phone,
		Address:        s.Contact.Address,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		LastUpdatedAt:  s.LastUpdatedAt,
		Version:        s.Version,
	}
}

// ToListShareholderResponse converts a slice of domain.Shareholder to DTOs
func ToListShareholderResponse(shareholders []domain.Shareholder) []ShareholderResponse {
	res := make([]ShareholderResponse, len(shareholders))
	for i := range shareholders {
		res[i] = ToShareholderResponse(&shareholders[i])
	}
	return res
}

// DeleteShareholderResponse tells whether the shareholder was removed or only deactivated.
type DeleteShareholderResponse struct {
	ShareholderID string `json:"shareholderID"`
	Outcome       string `json:"outcome"` // REMOVED or DEACTIVATED
}

// PositionResponse defines the data returned for one share position.
type PositionResponse struct {
	PositionID       string           `json:"positionID"`
	ShareholderID    string           `json:"shareholderID"`
	ShareClass       string           `json:"shareClass"`
	ShareNumberFrom  int64            `json:"shareNumberFrom"`
	ShareNumberTo    int64            `json:"shareNumberTo"`
	Count            int64            `json:"count"`
	NominalValue     decimal.Decimal  `json:"nominalValue"`
	AcquisitionPrice *decimal.Decimal `json:"acquisitionPrice,omitempty"`
	AcquisitionDate  time.Time        `json:"acquisitionDate"`
	TransactionID    string           `json:"transactionID"`
	IsActive         bool             `json:"isActive"`
}

// ToListPositionResponse converts positions to DTOs
func ToListPositionResponse(positions []domain.SharePosition) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = PositionResponse{
			PositionID:       p.PositionID,
			ShareholderID:    p.ShareholderID,
			ShareClass:       p.ShareClass,
			ShareNumberFrom:  p.ShareNumberFrom,
			ShareNumberTo:    p.ShareNumberTo,
			Count:            p.Count,
			NominalValue:     p.NominalValue,
			AcquisitionPrice: p.AcquisitionPrice,
			AcquisitionDate:  p.AcquisitionDate,
			TransactionID:    p.TransactionID,
			IsActive:         p.IsActive,
		}
	}
	return res
}
