package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/utils/captable"
)

// transactionValidator runs the ordered pre-write checks of a share transaction.
// Each check has its own failure so clients can tell "does not exist" from "numbers don't add up".
type transactionValidator struct {
	BaseService
	shareholderRepo portsrepo.ShareholderReader
	classRepo       portsrepo.ShareClassReader
	positionRepo    portsrepo.PositionReader
}

// NewTransactionValidator creates the validator used by the ledger service
func NewTransactionValidator(
	shareholderRepo portsrepo.ShareholderReader,
	classRepo portsrepo.ShareClassReader,
	positionRepo portsrepo.PositionReader,
	options ...ServiceOption,
) portssvc.TransactionValidatorSvc {
	return &transactionValidator{
		BaseService:     newBaseService(options),
		shareholderRepo: shareholderRepo,
		classRepo:       classRepo,
		positionRepo:    positionRepo,
	}
}

var _ portssvc.TransactionValidatorSvc = (*transactionValidator)(nil)

func (v *transactionValidator) Validate(ctx context.Context, txn domain.ShareTransaction) (domain.PositionPlan, error) {
	if !txn.Type.IsValid() {
		return domain.PositionPlan{}, apperrors.NewValidationError("unknown transaction type " + string(txn.Type))
	}

	// 1. target shareholder
	if err := v.requireActiveShareholder(ctx, txn.TenantID, txn.ToShareholderID, "target shareholder"); err != nil {
		return domain.PositionPlan{}, err
	}

	// 2. range bounds
	target := txn.Range()
	if !target.IsValid() {
		return domain.PositionPlan{}, apperrors.NewValidationError("invalid range")
	}

	// 3. count
	if txn.NumberOfShares != target.Count() {
		return domain.PositionPlan{}, apperrors.NewValidationError("share count mismatch")
	}

	// 4. source shareholder
	if txn.Type.RequiresSource() {
		if txn.SourceShareholderID() == "" {
			return domain.PositionPlan{}, apperrors.NewValidationError(fmt.Sprintf("fromShareholderId is required for %s", txn.Type))
		}
		if err := v.requireActiveShareholder(ctx, txn.TenantID, txn.SourceShareholderID(), "source shareholder"); err != nil {
			return domain.PositionPlan{}, err
		}
	}

	// 5. share class
	class, err := v.classRepo.FindShareClass(ctx, txn.TenantID, txn.ShareClass)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.PositionPlan{}, apperrors.NewValidationError("unknown share class")
		}
		v.LogError(ctx, err, "Failed to load share class during validation",
			slog.String("share_class", txn.ShareClass))
		return domain.PositionPlan{}, err
	}

	// 6. range ownership
	active, err := v.positionRepo.ListActivePositionsByClass(ctx, txn.TenantID, txn.ShareClass)
	if err != nil {
		v.LogError(ctx, err, "Failed to load active positions during validation",
			slog.String("share_class", txn.ShareClass))
		return domain.PositionPlan{}, err
	}

	plan, err := captable.Plan(txn, active, class.NominalValue, v.NewID)
	if err != nil {
		switch {
		case errors.Is(err, captable.ErrRangeAlreadyIssued):
			return domain.PositionPlan{}, apperrors.NewValidationErrorWithCause(captable.ErrRangeAlreadyIssued.Error(), err)
		case errors.Is(err, captable.ErrRangeNotHeld):
			return domain.PositionPlan{}, apperrors.NewValidationErrorWithCause(captable.ErrRangeNotHeld.Error(), err)
		default:
			return domain.PositionPlan{}, err
		}
	}
	return plan, nil
}

// requireActiveShareholder treats deactivated shareholders as absent from the directory.
func (v *transactionValidator) requireActiveShareholder(ctx context.Context, tenantID, shareholderID, role string) error {
	if shareholderID == "" {
		return apperrors.NewNotFoundError(role)
	}
	shareholder, err := v.shareholderRepo.FindShareholderByID(ctx, tenantID, shareholderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(role)
		}
		v.LogError(ctx, err, "Failed to load shareholder during validation",
			slog.String("shareholder_id", shareholderID))
		return err
	}
	if !shareholder.IsActive {
		return apperrors.NewNotFoundError(role)
	}
	return nil
}
