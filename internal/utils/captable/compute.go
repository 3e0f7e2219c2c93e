package captable

import (
	"sort"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PercentagePrecision is the number of fractional digits kept for percentages.
// Presentation rounds further; nothing in the engine does.
const PercentagePrecision int32 = 16

var hundred = decimal.NewFromInt(100)

type holderAccumulator struct {
	holding domain.ShareholderHolding
	classes map[string]*domain.ClassHolding
}

type classAccumulator struct {
	summary domain.ClassSummary
}

// Compute aggregates active positions into a cap table. It is pure: the same input always yields
// an identical summary. Inactive positions in the input are ignored. Shareholders missing from
// the directory still appear, with an empty name.
func Compute(tenantID string, positions []domain.SharePosition, classes domain.ShareClassIndex, shareholders map[string]domain.Shareholder) domain.CapTableSummary {
	summary := domain.CapTableSummary{
		TenantID:          tenantID,
		Shareholders:      []domain.ShareholderHolding{},
		Classes:           []domain.ClassSummary{},
		TotalVotes:        decimal.Zero,
		TotalShareCapital: decimal.Zero,
	}

	holders := make(map[string]*holderAccumulator)
	classTotals := make(map[string]*classAccumulator)

	for _, p := range positions {
		if !p.IsActive || p.Count <= 0 {
			continue
		}
		count := decimal.NewFromInt(p.Count)
		votesPerShare := classes.VotesPerShare(p.ShareClass)
		votes := count.Mul(votesPerShare)
		capital := p.ShareCapital()

		acc, ok := holders[p.ShareholderID]
		if !ok {
			acc = newHolderAccumulator(p.ShareholderID, shareholders)
			holders[p.ShareholderID] = acc
		}
		ch, ok := acc.classes[p.ShareClass]
		if !ok {
			ch = &domain.ClassHolding{ShareClass: p.ShareClass, Votes: decimal.Zero, ShareCapital: decimal.Zero}
			acc.classes[p.ShareClass] = ch
		}
		ch.Shares += p.Count
		ch.Votes = ch.Votes.Add(votes)
		ch.ShareCapital = ch.ShareCapital.Add(capital)

		acc.holding.TotalShares += p.Count
		acc.holding.TotalVotes = acc.holding.TotalVotes.Add(votes)
		acc.holding.ShareCapital = acc.holding.ShareCapital.Add(capital)

		ct, ok := classTotals[p.ShareClass]
		if !ok {
			ct = &classAccumulator{summary: domain.ClassSummary{
				ShareClass:    p.ShareClass,
				VotesPerShare: votesPerShare,
				TotalVotes:    decimal.Zero,
				ShareCapital:  decimal.Zero,
			}}
			classTotals[p.ShareClass] = ct
		}
		ct.summary.TotalShares += p.Count
		ct.summary.TotalVotes = ct.summary.TotalVotes.Add(votes)
		ct.summary.ShareCapital = ct.summary.ShareCapital.Add(capital)

		summary.TotalShares += p.Count
		summary.TotalVotes = summary.TotalVotes.Add(votes)
		summary.TotalShareCapital = summary.TotalShareCapital.Add(capital)
	}

	totalShares := decimal.NewFromInt(summary.TotalShares)

	for _, acc := range holders {
		h := acc.holding
		h.OwnershipPercentage = Percentage(decimal.NewFromInt(h.TotalShares), totalShares)
		h.VotingPercentage = Percentage(h.TotalVotes, summary.TotalVotes)
		h.Classes = make([]domain.ClassHolding, 0, len(acc.classes))
		for _, ch := range acc.classes {
			h.Classes = append(h.Classes, *ch)
		}
		sort.Slice(h.Classes, func(i, j int) bool { return h.Classes[i].ShareClass < h.Classes[j].ShareClass })
		summary.Shareholders = append(summary.Shareholders, h)
	}
	sort.Slice(summary.Shareholders, func(i, j int) bool {
		a, b := summary.Shareholders[i], summary.Shareholders[j]
		if a.TotalShares != b.TotalShares {
			return a.TotalShares > b.TotalShares
		}
		return a.ShareholderID < b.ShareholderID
	})

	for _, ct := range classTotals {
		cs := ct.summary
		cs.Percentage = Percentage(decimal.NewFromInt(cs.TotalShares), totalShares)
		summary.Classes = append(summary.Classes, cs)
	}
	sort.Slice(summary.Classes, func(i, j int) bool { return summary.Classes[i].ShareClass < summary.Classes[j].ShareClass })

	return summary
}

// Percentage returns part / total * 100, or zero when total is zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(total, PercentagePrecision)
}

func newHolderAccumulator(shareholderID string, shareholders map[string]domain.Shareholder) *holderAccumulator {
	h := domain.ShareholderHolding{
		ShareholderID: shareholderID,
		TotalVotes:    decimal.Zero,
		ShareCapital:  decimal.Zero,
	}
	if sh, ok := shareholders[shareholderID]; ok {
		h.Name = sh.Name
		h.Type = sh.Type
	}
	return &holderAccumulator{holding: h, classes: make(map[string]*domain.ClassHolding)}
}
