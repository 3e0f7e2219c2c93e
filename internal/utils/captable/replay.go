package captable

import (
	"fmt"
	"sort"

	"github.com/SscSPs/share_register/internal/core/domain"
)

// Replay rebuilds the active position projection from the ledger alone.
// transactions must be in application order (ascending registration time).
func Replay(transactions []domain.ShareTransaction, classes domain.ShareClassIndex) ([]domain.SharePosition, error) {
	active := make(map[string]domain.SharePosition)
	seq := 0
	newID := func() string {
		seq++
		return fmt.Sprintf("replay-%d", seq)
	}

	for _, txn := range transactions {
		current := make([]domain.SharePosition, 0, len(active))
		for _, p := range active {
			current = append(current, p)
		}
		plan, err := Plan(txn, current, classes[txn.ShareClass].NominalValue, newID)
		if err != nil {
			return nil, fmt.Errorf("replaying transaction %s: %w", txn.TransactionID, err)
		}
		for _, d := range plan.Deactivate {
			delete(active, d.PositionID)
		}
		for _, p := range plan.Create {
			active[p.PositionID] = p
		}
	}

	out := make([]domain.SharePosition, 0, len(active))
	for _, p := range active {
		out = append(out, p)
	}
	SortPositions(out)
	return out, nil
}

// SortPositions orders positions by class, then first share number.
func SortPositions(positions []domain.SharePosition) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].ShareClass != positions[j].ShareClass {
			return positions[i].ShareClass < positions[j].ShareClass
		}
		return positions[i].ShareNumberFrom < positions[j].ShareNumberFrom
	})
}

type positionKey struct {
	holder string
	class  string
	r      domain.ShareRange
}

// Diff compares stored active positions with replayed ones by holder, class and range.
func Diff(stored, replayed []domain.SharePosition) []domain.RegisterDiscrepancy {
	storedKeys := make(map[positionKey]bool, len(stored))
	for _, p := range stored {
		if p.IsActive {
			storedKeys[positionKey{p.ShareholderID, p.ShareClass, p.Range()}] = true
		}
	}
	replayedKeys := make(map[positionKey]bool, len(replayed))
	for _, p := range replayed {
		replayedKeys[positionKey{p.ShareholderID, p.ShareClass, p.Range()}] = true
	}

	discrepancies := []domain.RegisterDiscrepancy{}
	for k := range replayedKeys {
		if !storedKeys[k] {
			discrepancies = append(discrepancies, domain.RegisterDiscrepancy{Kind: domain.MissingInStore, ShareholderID: k.holder, ShareClass: k.class, Range: k.r})
		}
	}
	for k := range storedKeys {
		if !replayedKeys[k] {
			discrepancies = append(discrepancies, domain.RegisterDiscrepancy{Kind: domain.UnexpectedInStore, ShareholderID: k.holder, ShareClass: k.class, Range: k.r})
		}
	}
	sort.Slice(discrepancies, func(i, j int) bool {
		a, b := discrepancies[i], discrepancies[j]
		if a.ShareClass != b.ShareClass {
			return a.ShareClass < b.ShareClass
		}
		if a.Range.From != b.Range.From {
			return a.Range.From < b.Range.From
		}
		return a.Kind < b.Kind
	})
	return discrepancies
}
