package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/utils/captable"
	"github.com/SscSPs/share_register/internal/utils/export"
)

// capTableService computes snapshots on read. Nothing it produces is persisted.
type capTableService struct {
	BaseService
	shareholderRepo portsrepo.ShareholderReader
	classRepo       portsrepo.ShareClassReader
	positionRepo    portsrepo.PositionReader
	ledgerRepo      portsrepo.LedgerReader
	formatter       *export.Formatter
}

// NewCapTableService creates the cap table service
func NewCapTableService(
	repos portsrepo.RepositoryProvider,
	formatter *export.Formatter,
	options ...ServiceOption,
) portssvc.CapTableSvcFacade {
	if formatter == nil {
		formatter = export.NewFormatter(export.DefaultDelimiter)
	}
	return &capTableService{
		BaseService:     newBaseService(options),
		shareholderRepo: repos.ShareholderRepo,
		classRepo:       repos.ShareClassRepo,
		positionRepo:    repos.PositionRepo,
		ledgerRepo:      repos.LedgerRepo,
		formatter:       formatter,
	}
}

var _ portssvc.CapTableSvcFacade = (*capTableService)(nil)

func (s *capTableService) GetCapTable(ctx context.Context, tenantID string, asOf *time.Time, userID string) (*domain.CapTableSummary, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.compute(ctx, tenantID, asOf)
}

func (s *capTableService) compute(ctx context.Context, tenantID string, asOf *time.Time) (*domain.CapTableSummary, error) {
	classes, holders, err := s.loadReferenceData(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var positions []domain.SharePosition
	if asOf == nil {
		positions, err = s.positionRepo.ListActivePositions(ctx, tenantID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list active positions",
				slog.String("tenant_id", tenantID))
			return nil, err
		}
	} else {
		positions, err = s.positionsAsOf(ctx, tenantID, *asOf, classes)
		if err != nil {
			return nil, err
		}
	}

	summary := captable.Compute(tenantID, positions, classes, holders)
	summary.AsOf = asOf

	s.LogDebug(ctx, "Cap table computed",
		slog.String("tenant_id", tenantID),
		slog.Int("positions", len(positions)),
		slog.Int64("total_shares", summary.TotalShares))
	return &summary, nil
}

// positionsAsOf replays the ledger entries dated on or before the end of asOf's day.
func (s *capTableService) positionsAsOf(ctx context.Context, tenantID string, asOf time.Time, classes domain.ShareClassIndex) ([]domain.SharePosition, error) {
	txns, err := s.ledgerRepo.ListTransactionsAscending(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger for historical cap table",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	cutoff := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location()).AddDate(0, 0, 1)
	dated := make([]domain.ShareTransaction, 0, len(txns))
	for _, t := range txns {
		if t.TransactionDate.Before(cutoff) {
			dated = append(dated, t)
		}
	}

	positions, err := captable.Replay(dated, classes)
	if err != nil {
		s.LogWarn(ctx, err, "Ledger cannot be replayed as of date",
			slog.String("tenant_id", tenantID),
			slog.Time("as_of", asOf))
		return nil, apperrors.NewValidationErrorWithCause(
			fmt.Sprintf("cap table cannot be reconstructed as of %s", asOf.Format("2006-01-02")), err)
	}
	return positions, nil
}

func (s *capTableService) loadReferenceData(ctx context.Context, tenantID string) (domain.ShareClassIndex, map[string]domain.Shareholder, error) {
	classes, err := s.classRepo.ListShareClasses(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list share classes",
			slog.String("tenant_id", tenantID))
		return nil, nil, err
	}
	shareholders, err := s.shareholderRepo.ListShareholders(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shareholders",
			slog.String("tenant_id", tenantID))
		return nil, nil, err
	}

	holders := make(map[string]domain.Shareholder, len(shareholders))
	for _, sh := range shareholders {
		holders[sh.ShareholderID] = sh
	}
	return domain.NewShareClassIndex(classes), holders, nil
}

func (s *capTableService) ExportCapTable(ctx context.Context, tenantID string, format export.Format, userID string) ([]byte, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	summary, err := s.compute(ctx, tenantID, nil)
	if err != nil {
		return nil, err
	}
	txns, err := s.ledgerRepo.ListTransactionsAscending(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger for export",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	out, err := s.formatter.Render(format, export.Document{CapTable: *summary, Transactions: txns})
	if err != nil {
		s.LogError(ctx, err, "Failed to render cap table export",
			slog.String("tenant_id", tenantID),
			slog.String("format", string(format)))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to render export", err)
	}

	s.LogInfo(ctx, "Cap table exported",
		slog.String("tenant_id", tenantID),
		slog.String("format", string(format)),
		slog.Int("bytes", len(out)))
	return out, nil
}

// VerifyRegister checks that the stored positions are exactly what the ledger implies.
func (s *capTableService) VerifyRegister(ctx context.Context, tenantID, userID string) (*domain.RegisterVerification, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	classList, err := s.classRepo.ListShareClasses(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list share classes",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	txns, err := s.ledgerRepo.ListTransactionsAscending(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger for verification",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	stored, err := s.positionRepo.ListActivePositions(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active positions",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	result := &domain.RegisterVerification{
		TenantID:         tenantID,
		TransactionCount: len(txns),
		ActivePositions:  len(stored),
		Discrepancies:    []domain.RegisterDiscrepancy{},
	}

	replayed, err := captable.Replay(txns, domain.NewShareClassIndex(classList))
	if err != nil {
		result.ReplayError = err.Error()
		s.LogWarn(ctx, err, "Ledger replay failed during verification",
			slog.String("tenant_id", tenantID))
		return result, nil
	}

	result.Discrepancies = captable.Diff(stored, replayed)
	result.Consistent = len(result.Discrepancies) == 0
	if !result.Consistent {
		s.LogWarn(ctx, fmt.Errorf("%d discrepancies", len(result.Discrepancies)), "Position store diverges from ledger",
			slog.String("tenant_id", tenantID))
	}
	return result, nil
}
