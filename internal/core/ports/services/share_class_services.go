package services

import (
	"context"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/dto"
)

// ShareClassSvcFacade defines operations on share class metadata
type ShareClassSvcFacade interface {
	// DefineShareClass creates a class. Requires the ADMIN role.
	DefineShareClass(ctx context.Context, tenantID string, req dto.CreateShareClassRequest, userID string) (*domain.ShareClass, error)
	ListShareClasses(ctx context.Context, tenantID, userID string) ([]domain.ShareClass, error)
	GetShareClass(ctx context.Context, tenantID, label, userID string) (*domain.ShareClass, error)
}
