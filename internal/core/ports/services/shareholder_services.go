package services

import (
	"context"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/dto"
)

// DeleteOutcome tells what DeleteShareholder did.
type DeleteOutcome string

const (
	ShareholderRemoved     DeleteOutcome = "REMOVED"
	ShareholderDeactivated DeleteOutcome = "DEACTIVATED"
)

// ShareholderReaderSvc defines read operations of the shareholder directory
type ShareholderReaderSvc interface {
	GetShareholder(ctx context.Context, tenantID, shareholderID, userID string) (*domain.Shareholder, error)
	ListShareholders(ctx context.Context, tenantID, userID string) ([]domain.Shareholder, error)

	// ListShareholderPositions returns active and inactive positions of a shareholder.
	ListShareholderPositions(ctx context.Context, tenantID, shareholderID, userID string) ([]domain.SharePosition, error)
}

// ShareholderWriterSvc defines write operations of the shareholder directory
type ShareholderWriterSvc interface {
	CreateShareholder(ctx context.Context, tenantID string, req dto.CreateShareholderRequest, userID string) (*domain.Shareholder, error)
	UpdateShareholder(ctx context.Context, tenantID, shareholderID string, req dto.UpdateShareholderRequest, userID string) (*domain.Shareholder, error)

	// DeleteShareholder refuses shareholders with active positions, deactivates those the ledger
	// refers to, and removes the rest.
	DeleteShareholder(ctx context.Context, tenantID, shareholderID, userID string) (DeleteOutcome, error)
}

// ShareholderSvcFacade combines all shareholder service interfaces
type ShareholderSvcFacade interface {
	ShareholderReaderSvc
	ShareholderWriterSvc
}
