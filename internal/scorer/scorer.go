package scorer

import (
	"sort"

	"github.com/sells-group/vision-cli/internal/ingest"
	"github.com/sells-group/vision-cli/internal/model"
)

// Config gates which dictionary candidates contribute to the aggregates.
type Config struct {
	MinScore  float64
	Separator byte
	Provider  string
}

type dayKey struct {
	product string
	date    string
	id      string
}

type productKey struct {
	product string
	id      string
}

type agg struct {
	score float64
	name  string
}

// Accumulator carries the two running score aggregates: per (product,
// date, taxonomy-id) and per (product, taxonomy-id). Scores add up; the
// stored name is whichever candidate name was seen last for the key.
type Accumulator struct {
	byDay     map[dayKey]*agg
	byProduct map[productKey]*agg
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		byDay:     make(map[dayKey]*agg),
		byProduct: make(map[productKey]*agg),
	}
}

// Score resolves a category row against the dictionary and folds every
// candidate at or above the score threshold into both aggregates, weighted
// by the row's impressions. Returns the number of candidates applied; zero
// means the row contributed nothing (dictionary miss, empty category, or
// all candidates under the threshold).
func (a *Accumulator) Score(product, date, category string, impressions float64, dict Dictionary, cfg Config) int {
	tiers := ingest.SplitTiers(cfg.Provider, category, cfg.Separator)
	if len(tiers) == 0 {
		return 0
	}

	var applied int
	for _, cand := range dict.Lookup(tiers[0]) {
		if cand.Score < cfg.MinScore {
			continue
		}
		weighted := impressions * cand.Score

		dk := dayKey{product, date, cand.ID}
		if cur, ok := a.byDay[dk]; ok {
			cur.score += weighted
			cur.name = cand.Name
		} else {
			a.byDay[dk] = &agg{score: weighted, name: cand.Name}
		}

		pk := productKey{product, cand.ID}
		if cur, ok := a.byProduct[pk]; ok {
			cur.score += weighted
			cur.name = cand.Name
		} else {
			a.byProduct[pk] = &agg{score: weighted, name: cand.Name}
		}

		applied++
	}
	return applied
}

// Products returns the number of distinct (product, taxonomy-id) totals.
func (a *Accumulator) Products() int { return len(a.byProduct) }

// Rows emits the per-day aggregate as intermediate records, sorted by
// product, date, then taxonomy id.
func (a *Accumulator) Rows() []model.ScoredTaxonomy {
	keys := make([]dayKey, 0, len(a.byDay))
	for k := range a.byDay {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ki, kj := keys[i], keys[j]
		if ki.product != kj.product {
			return ki.product < kj.product
		}
		if ki.date != kj.date {
			return ki.date < kj.date
		}
		return ki.id < kj.id
	})

	rows := make([]model.ScoredTaxonomy, 0, len(keys))
	for _, k := range keys {
		cur := a.byDay[k]
		rows = append(rows, model.ScoredTaxonomy{
			InsertionOrder:  k.product,
			Date:            k.date,
			IABID:           k.id,
			IABCategoryName: cur.name,
			IABScore:        cur.score,
		})
	}
	return rows
}
