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

// shareholderService implements the ShareholderSvcFacade interface
type shareholderService struct {
	BaseService
	shareholderRepo portsrepo.ShareholderRepositoryFacade
	positionRepo    portsrepo.PositionReader
	ledgerRepo      portsrepo.LedgerReader
}

// NewShareholderService creates the shareholder directory service
func NewShareholderService(
	shareholderRepo portsrepo.ShareholderRepositoryFacade,
	positionRepo portsrepo.PositionReader,
	ledgerRepo portsrepo.LedgerReader,
	options ...ServiceOption,
) portssvc.ShareholderSvcFacade {
	return &shareholderService{
		BaseService:     newBaseService(options),
		shareholderRepo: shareholderRepo,
		positionRepo:    positionRepo,
		ledgerRepo:      ledgerRepo,
	}
}

var _ portssvc.ShareholderSvcFacade = (*shareholderService)(nil)

func (s *shareholderService) CreateShareholder(ctx context.Context, tenantID string, req dto.CreateShareholderRequest, userID string) (*domain.Shareholder, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("shareholder name is required")
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("unknown shareholder type " + string(req.Type))
	}

	shareholder := domain.Shareholder{
		ShareholderID:  s.NewID(),
		TenantID:       tenantID,
		Name:           name,
		Type:           req.Type,
		IdentityNumber: strings.TrimSpace(req.IdentityNumber),
		Contact: domain.ContactInfo{
			Email:   strings.TrimSpace(req.Email),
			Phone:   strings.TrimSpace(req.Phone),
			Address: strings.TrimSpace(req.Address),
		},
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.shareholderRepo.SaveShareholder(ctx, shareholder); err != nil {
		s.LogError(ctx, err, "Failed to save shareholder",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Shareholder created successfully",
		slog.String("tenant_id", tenantID),
		slog.String("shareholder_id", shareholder.ShareholderID))
	return &shareholder, nil
}

func (s *shareholderService) GetShareholder(ctx context.Context, tenantID, shareholderID, userID string) (*domain.Shareholder, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findShareholder(ctx, tenantID, shareholderID)
}

func (s *shareholderService) findShareholder(ctx context.Context, tenantID, shareholderID string) (*domain.Shareholder, error) {
	shareholder, err := s.shareholderRepo.FindShareholderByID(ctx, tenantID, shareholderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("shareholder")
		}
		s.LogError(ctx, err, "Failed to find shareholder",
			slog.String("tenant_id", tenantID),
			slog.String("shareholder_id", shareholderID))
		return nil, err
	}
	return shareholder, nil
}

func (s *shareholderService) ListShareholders(ctx context.Context, tenantID, userID string) ([]domain.Shareholder, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	shareholders, err := s.shareholderRepo.ListShareholders(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shareholders",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if shareholders == nil {
		return []domain.Shareholder{}, nil
	}

	s.LogDebug(ctx, "Shareholders listed successfully",
		slog.String("tenant_id", tenantID),
		slog.Int("count", len(shareholders)))
	return shareholders, nil
}

func (s *shareholderService) ListShareholderPositions(ctx context.Context, tenantID, shareholderID, userID string) ([]domain.SharePosition, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if _, err := s.findShareholder(ctx, tenantID, shareholderID); err != nil {
		return nil, err
	}

	positions, err := s.positionRepo.ListPositionsByShareholder(ctx, tenantID, shareholderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shareholder positions",
			slog.String("tenant_id", tenantID),
			slog.String("shareholder_id", shareholderID))
		return nil, err
	}
	if positions == nil {
		return []domain.SharePosition{}, nil
	}
	return positions, nil
}

// UpdateShareholder changes name and contact details. Holdings are never edited here.
func (s *shareholderService) UpdateShareholder(ctx context.Context, tenantID, shareholderID string, req dto.UpdateShareholderRequest, userID string) (*domain.Shareholder, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	shareholder, err := s.findShareholder(ctx, tenantID, shareholderID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("shareholder name cannot be empty")
		}
		shareholder.Name = name
	}
	if req.Email != nil {
		shareholder.Contact.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		shareholder.Contact.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		shareholder.Contact.Address = strings.TrimSpace(*req.Address)
	}
	shareholder.LastUpdatedAt = s.Now()
	shareholder.LastUpdatedBy = userID

	if err := s.shareholderRepo.UpdateShareholder(ctx, *shareholder); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update shareholder",
				slog.String("shareholder_id", shareholderID))
		}
		return nil, err
	}
	shareholder.Version++

	s.LogInfo(ctx, "Shareholder updated successfully",
		slog.String("shareholder_id", shareholderID))
	return shareholder, nil
}

// DeleteShareholder removes a shareholder, or deactivates it when the ledger still refers to it.
func (s *shareholderService) DeleteShareholder(ctx context.Context, tenantID, shareholderID, userID string) (portssvc.DeleteOutcome, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		return "", err
	}

	shareholder, err := s.findShareholder(ctx, tenantID, shareholderID)
	if err != nil {
		return "", err
	}

	positions, err := s.positionRepo.ListPositionsByShareholder(ctx, tenantID, shareholderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list positions before delete",
			slog.String("shareholder_id", shareholderID))
		return "", err
	}
	for _, p := range positions {
		if p.IsActive {
			return "", apperrors.NewValidationError("shareholder owns active positions and cannot be deleted")
		}
	}

	references, err := s.ledgerRepo.CountTransactionsByShareholder(ctx, tenantID, shareholderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count ledger references before delete",
			slog.String("shareholder_id", shareholderID))
		return "", err
	}

	if references > 0 || len(positions) > 0 {
		if shareholder.IsActive {
			if err := s.shareholderRepo.DeactivateShareholder(ctx, tenantID, shareholderID, shareholder.Version, userID, s.Now()); err != nil {
				if !errors.Is(err, apperrors.ErrConflict) {
					s.LogError(ctx, err, "Failed to deactivate shareholder",
						slog.String("shareholder_id", shareholderID))
				}
				return "", err
			}
		}
		s.LogInfo(ctx, "Shareholder deactivated",
			slog.String("shareholder_id", shareholderID),
			slog.Int("ledger_references", references))
		return portssvc.ShareholderDeactivated, nil
	}

	if err := s.shareholderRepo.DeleteShareholder(ctx, tenantID, shareholderID); err != nil {
		s.LogError(ctx, err, "Failed to delete shareholder",
			slog.String("shareholder_id", shareholderID))
		return "", err
	}
	s.LogInfo(ctx, "Shareholder removed",
		slog.String("shareholder_id", shareholderID))
	return portssvc.ShareholderRemoved, nil
}
