// Package ledger owns the stored transaction collection. It is the
// only place that adds, reorders, or drops entries; everything else
// treats the collection as read-only.
package ledger

import (
	"sort"

	"github.com/umsatz-dev/umsatz/internal/model"
)

// Merge integrates a freshly parsed batch into the existing
// collection. Incoming transactions whose dedup key matches a stored
// record are suppressed, so re-importing the same file never
// double-counts. The result is sorted by booking date descending.
func Merge(batch, existing []model.Transaction) (merged []model.Transaction, added, duplicates int) {
	stored := make(map[string]bool, len(existing))
	for _, t := range existing {
		stored[t.DedupKey()] = true
	}

	merged = make([]model.Transaction, 0, len(batch)+len(existing))
	for _, t := range batch {
		if stored[t.DedupKey()] {
			duplicates++
			continue
		}
		merged = append(merged, t)
		added++
	}
	merged = append(merged, existing...)

	// Plain string comparison: correct for normalized YYYY-MM-DD
	// values; degraded raw dates sort by their literal text.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].BookingDate > merged[j].BookingDate
	})
	return merged, added, duplicates
}
