package captable

import (
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrRangeAlreadyIssued is returned when new share numbers collide with an active position of the class.
	ErrRangeAlreadyIssued = errors.New("share range already issued")
	// ErrRangeNotHeld is returned when the source shareholder does not hold the whole range being moved.
	ErrRangeNotHeld = errors.New("range not held by source shareholder")
)

// IDGenerator produces ids for newly created positions.
type IDGenerator func() string

// Plan derives the position changes implied by txn, given the active positions of the tenant.
// Only positions of txn.ShareClass are considered. nominalValue is the per-share nominal value
// assigned to freshly created share numbers.
//
// For transfers and redemptions every overlapped source position is deactivated and the parts of
// it outside the moved range are re-created for the original holder. The recipient of a
// non-redemption transaction always gets exactly one new position covering the whole range.
func Plan(txn domain.ShareTransaction, active []domain.SharePosition, nominalValue decimal.Decimal, newID IDGenerator) (domain.PositionPlan, error) {
	plan := domain.PositionPlan{Transaction: txn}
	target := txn.Range()

	overlapping := overlappingPositions(active, txn.ShareClass, target)

	if txn.Type.CreatesShares() {
		if len(overlapping) > 0 {
			return domain.PositionPlan{}, fmt.Errorf("%w: %s overlaps active position %s (%s)",
				ErrRangeAlreadyIssued, target, overlapping[0].PositionID, overlapping[0].Range())
		}
		plan.Create = append(plan.Create, recipientPosition(txn, nominalValue, newID))
		return plan, nil
	}

	source := txn.SourceShareholderID()
	var covered int64
	for _, p := range overlapping {
		if p.ShareholderID != source {
			return domain.PositionPlan{}, fmt.Errorf("%w: shares %s are held by another shareholder", ErrRangeNotHeld, p.Range())
		}
		part, _ := p.Range().Intersect(target)
		covered += part.Count()

		plan.Deactivate = append(plan.Deactivate, domain.PositionDeactivation{
			PositionID:      p.PositionID,
			ExpectedVersion: p.Version,
		})
		for _, rest := range p.Range().Subtract(target) {
			plan.Create = append(plan.Create, remainderPosition(p, rest, txn, newID))
		}
	}
	if covered != target.Count() {
		return domain.PositionPlan{}, fmt.Errorf("%w: %d of %d shares in %s are held", ErrRangeNotHeld, covered, target.Count(), target)
	}

	if txn.Type.GivesRecipientPosition() {
		// transferred shares keep the nominal value they were issued at
		plan.Create = append(plan.Create, recipientPosition(txn, overlapping[0].NominalValue, newID))
	}
	return plan, nil
}

func overlappingPositions(active []domain.SharePosition, class string, r domain.ShareRange) []domain.SharePosition {
	var out []domain.SharePosition
	for _, p := range active {
		if p.IsActive && p.ShareClass == class && p.Range().Overlaps(r) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShareNumberFrom < out[j].ShareNumberFrom })
	return out
}

func recipientPosition(txn domain.ShareTransaction, nominalValue decimal.Decimal, newID IDGenerator) domain.SharePosition {
	return domain.SharePosition{
		PositionID:       newID(),
		TenantID:         txn.TenantID,
		ShareholderID:    txn.ToShareholderID,
		ShareClass:       txn.ShareClass,
		ShareNumberFrom:  txn.ShareNumberFrom,
		ShareNumberTo:    txn.ShareNumberTo,
		Count:            txn.Range().Count(),
		NominalValue:     nominalValue,
		AcquisitionPrice: txn.PricePerShare,
		AcquisitionDate:  txn.TransactionDate,
		TransactionID:    txn.TransactionID,
		IsActive:         true,
		AuditFields:      domain.NewAuditFields(txn.RegisteredBy, txn.RegisteredAt),
	}
}

// remainderPosition keeps the original acquisition data; only the record is new.
func remainderPosition(src domain.SharePosition, r domain.ShareRange, txn domain.ShareTransaction, newID IDGenerator) domain.SharePosition {
	return domain.SharePosition{
		PositionID:       newID(),
		TenantID:         src.TenantID,
		ShareholderID:    src.ShareholderID,
		ShareClass:       src.ShareClass,
		ShareNumberFrom:  r.From,
		ShareNumberTo:    r.To,
		Count:            r.Count(),
		NominalValue:     src.NominalValue,
		AcquisitionPrice: src.AcquisitionPrice,
		AcquisitionDate:  src.AcquisitionDate,
		TransactionID:    txn.TransactionID,
		IsActive:         true,
		AuditFields:      domain.NewAuditFields(txn.RegisteredBy, txn.RegisteredAt),
	}
}
