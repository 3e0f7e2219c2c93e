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
	"github.com/shopspring/decimal"
)

type shareTransactionService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	validator  portssvc.TransactionValidatorSvc
}

// NewShareTransactionService creates the ledger service. Every register change goes through it.
func NewShareTransactionService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	validator portssvc.TransactionValidatorSvc,
	options ...ServiceOption,
) portssvc.ShareTransactionSvcFacade {
	return &shareTransactionService{
		BaseService: newBaseService(options),
		ledgerRepo:  ledgerRepo,
		validator:   validator,
	}
}

var _ portssvc.ShareTransactionSvcFacade = (*shareTransactionService)(nil)

// CreateTransaction validates the request against current state and applies it as one atomic unit.
// A concurrent change to an affected position makes it fail with apperrors.ErrConflict; the caller
// may retry the whole call.
func (s *shareTransactionService) CreateTransaction(ctx context.Context, tenantID string, req dto.CreateShareTransactionRequest, userID string) (*domain.ShareTransaction, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn := s.newTransaction(tenantID, req, userID)

	plan, err := s.validator.Validate(ctx, txn)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Share transaction rejected",
				slog.String("tenant_id", tenantID),
				slog.String("type", string(txn.Type)))
		}
		return nil, err
	}

	if err := s.ledgerRepo.ApplyPlan(ctx, plan); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, err, "Share transaction lost a concurrent update",
				slog.String("tenant_id", tenantID),
				slog.String("transaction_id", txn.TransactionID))
		} else {
			s.LogError(ctx, err, "Failed to apply share transaction",
				slog.String("tenant_id", tenantID),
				slog.String("transaction_id", txn.TransactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Share transaction registered",
		slog.String("tenant_id", tenantID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("share_class", txn.ShareClass),
		slog.String("range", txn.Range().String()),
		slog.Int("positions_created", len(plan.Create)),
		slog.Int("positions_deactivated", len(plan.Deactivate)))
	return &plan.Transaction, nil
}

func (s *shareTransactionService) newTransaction(tenantID string, req dto.CreateShareTransactionRequest, userID string) domain.ShareTransaction {
	txn := domain.ShareTransaction{
		TransactionID:     s.NewID(),
		TenantID:          tenantID,
		Type:              req.Type,
		TransactionDate:   domain.CalendarDate(req.TransactionDate),
		Description:       strings.TrimSpace(req.Description),
		FromShareholderID: nonEmpty(req.FromShareholderID),
		ToShareholderID:   req.ToShareholderID,
		ShareClass:        strings.TrimSpace(req.ShareClass),
		NumberOfShares:    req.NumberOfShares,
		ShareNumberFrom:   req.ShareNumberFrom,
		ShareNumberTo:     req.ShareNumberTo,
		PricePerShare:     req.PricePerShare,
		TotalAmount:       req.TotalAmount,
		DecisionID:        nonEmpty(req.DecisionID),
		MeetingID:         nonEmpty(req.MeetingID),
		RegisteredBy:      userID,
		RegisteredAt:      s.Now(),
	}
	// new share numbers have no previous holder
	if txn.Type.CreatesShares() {
		txn.FromShareholderID = nil
	}
	if txn.TotalAmount == nil && txn.PricePerShare != nil {
		total := txn.PricePerShare.Mul(decimal.NewFromInt(txn.NumberOfShares))
		txn.TotalAmount = &total
	}
	return txn
}

func (s *shareTransactionService) GetTransaction(ctx context.Context, tenantID, transactionID, userID string) (*domain.ShareTransaction, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, tenantID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("share transaction")
		}
		s.LogError(ctx, err, "Failed to find share transaction",
			slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *shareTransactionService) ListTransactions(ctx context.Context, tenantID, userID string, params dto.ListShareTransactionsParams) ([]domain.ShareTransaction, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	txns, next, err := s.ledgerRepo.ListTransactions(ctx, tenantID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list share transactions",
				slog.String("tenant_id", tenantID))
		}
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.ShareTransaction{}
	}
	s.LogDebug(ctx, "Share transactions listed",
		slog.String("tenant_id", tenantID),
		slog.Int("count", len(txns)))
	return txns, next, nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
