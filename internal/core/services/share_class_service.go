package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
)

type shareClassService struct {
	BaseService
	classRepo portsrepo.ShareClassRepositoryFacade
}

// NewShareClassService creates the share class metadata service
func NewShareClassService(classRepo portsrepo.ShareClassRepositoryFacade, options ...ServiceOption) portssvc.ShareClassSvcFacade {
	return &shareClassService{
		BaseService: newBaseService(options),
		classRepo:   classRepo,
	}
}

var _ portssvc.ShareClassSvcFacade = (*shareClassService)(nil)

func (s *shareClassService) DefineShareClass(ctx context.Context, tenantID string, req dto.CreateShareClassRequest, userID string) (*domain.ShareClass, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	label := strings.TrimSpace(req.Label)
	switch {
	case label == "":
		return nil, apperrors.NewValidationError("share class label is required")
	case !req.VotesPerShare.IsPositive():
		return nil, apperrors.NewValidationError("votes per share must be greater than zero")
	case req.NominalValue.IsNegative():
		return nil, apperrors.NewValidationError("nominal value cannot be negative")
	}

	class := domain.ShareClass{
		TenantID:      tenantID,
		Label:         label,
		VotesPerShare: req.VotesPerShare,
		NominalValue:  req.NominalValue,
		Description:   req.Description,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.classRepo.SaveShareClass(ctx, class); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save share class",
				slog.String("tenant_id", tenantID),
				slog.String("label", label))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Share class defined",
		slog.String("tenant_id", tenantID),
		slog.String("label", label),
		slog.String("votes_per_share", class.VotesPerShare.String()))
	return &class, nil
}

func (s *shareClassService) ListShareClasses(ctx context.Context, tenantID, userID string) ([]domain.ShareClass, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	classes, err := s.classRepo.ListShareClasses(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list share classes",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if classes == nil {
		return []domain.ShareClass{}, nil
	}
	return classes, nil
}

func (s *shareClassService) GetShareClass(ctx context.Context, tenantID, label, userID string) (*domain.ShareClass, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	class, err := s.classRepo.FindShareClass(ctx, tenantID, label)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("share class")
		}
		s.LogError(ctx, err, "Failed to find share class",
			slog.String("tenant_id", tenantID),
			slog.String("label", label))
		return nil, err
	}
	return class, nil
}
