package domain

import (
	"fmt"
	"math"
)

// MaxShareNumber is the highest share number a range may end at. The register stores ranges
// half-open, so the exclusive upper bound To+1 must still fit in an int64.
const MaxShareNumber = math.MaxInt64 - 1

// ShareRange is an inclusive, contiguous block of share numbers [From, To].
type ShareRange struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Count returns the number of shares in the range.
func (r ShareRange) Count() int64 {
	return r.To - r.From + 1
}

// IsValid reports whether the range is non-empty and lies within [1, MaxShareNumber].
func (r ShareRange) IsValid() bool {
	return r.From >= 1 && r.To >= r.From && r.To <= MaxShareNumber
}

// Overlaps reports whether r and o share at least one share number.
func (r ShareRange) Overlaps(o ShareRange) bool {
	return r.From <= o.To && o.From <= r.To
}

// Contains reports whether o lies entirely inside r.
func (r ShareRange) Contains(o ShareRange) bool {
	return r.From <= o.From && o.To <= r.To
}

// Intersect returns the common part of r and o.
func (r ShareRange) Intersect(o ShareRange) (ShareRange, bool) {
	if !r.Overlaps(o) {
		return ShareRange{}, false
	}
	return ShareRange{From: max(r.From, o.From), To: min(r.To, o.To)}, true
}

// Subtract returns the parts of r outside o in ascending order (zero, one or two ranges).
func (r ShareRange) Subtract(o ShareRange) []ShareRange {
	if !r.Overlaps(o) {
		return []ShareRange{r}
	}
	var rest []ShareRange
	if r.From < o.From {
		rest = append(rest, ShareRange{From: r.From, To: o.From - 1})
	}
	if o.To < r.To {
		rest = append(rest, ShareRange{From: o.To + 1, To: r.To})
	}
	return rest
}

func (r ShareRange) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}
