package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/vision-cli/internal/csvio"
)

// SplitTiers applies the provider's category-path correction, splits the
// path on sep, and returns the trimmed non-empty parts.
func SplitTiers(provider, category string, sep byte) []string {
	fixed := csvio.FixCategoryPath(provider, category, sep)
	parts := strings.Split(fixed, string(sep))
	tiers := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tiers = append(tiers, p)
		}
	}
	return tiers
}

// TierSet deduplicates extracted tier tuples of a fixed depth.
type TierSet struct {
	depth int
	seen  map[string][]string
}

// NewTierSet creates an empty set for tuples of the given depth.
func NewTierSet(depth int) *TierSet {
	return &TierSet{depth: depth, seen: make(map[string][]string)}
}

// Add records a category path. Paths with fewer than depth non-empty tiers
// are rejected outright, not truncated.
func (ts *TierSet) Add(provider, category string, sep byte) bool {
	tiers := SplitTiers(provider, category, sep)
	if len(tiers) < ts.depth {
		return false
	}
	tuple := tiers[:ts.depth]
	ts.seen[strings.Join(tuple, "\x00")] = tuple
	return true
}

// Len returns the number of unique tuples.
func (ts *TierSet) Len() int { return len(ts.seen) }

// Rows returns one JSONL-ready object per unique tuple, keys tier1..tierN,
// sorted lexicographically so identical inputs serialize identically.
func (ts *TierSet) Rows() []map[string]string {
	keys := make([]string, 0, len(ts.seen))
	for k := range ts.seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]map[string]string, 0, len(keys))
	for _, k := range keys {
		tuple := ts.seen[k]
		row := make(map[string]string, ts.depth)
		for i, tier := range tuple {
			row[fmt.Sprintf("tier%d", i+1)] = tier
		}
		rows = append(rows, row)
	}
	return rows
}
