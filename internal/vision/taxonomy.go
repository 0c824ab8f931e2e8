package vision

import (
	"math"
	"sort"

	"github.com/sells-group/vision-cli/internal/csvio"
	"github.com/sells-group/vision-cli/internal/ingest"
	"github.com/sells-group/vision-cli/internal/model"
)

type taxCell struct {
	score float64
	name  string
}

type taxCounts struct {
	days      map[[2]string]*taxCell // (date, id)
	dayTotals map[string]float64
	products  map[string]*taxCell // id
}

// taxonomyPass folds the IAB-scored intermediate into the contentTaxonomy
// section per product.
func (a *Assembler) taxonomyPass() (map[string]Taxonomy, *ingest.RowStats, error) {
	counts := make(map[string]*taxCounts)
	stats := &ingest.RowStats{}

	skipped, err := csvio.ReadJSONL(a.opts.TaxonomyPath, func(row model.ScoredTaxonomy) {
		product := model.ProductKey(row.InsertionOrder)
		if product == "" {
			stats.Skip("missing_insertion_order")
			return
		}
		tc, ok := counts[product]
		if !ok {
			tc = &taxCounts{
				days:      make(map[[2]string]*taxCell),
				dayTotals: make(map[string]float64),
				products:  make(map[string]*taxCell),
			}
			counts[product] = tc
		}

		date := model.NormalizeDate(row.Date)
		dk := [2]string{date, row.IABID}
		if cell, ok := tc.days[dk]; ok {
			cell.score += row.IABScore
			cell.name = row.IABCategoryName
		} else {
			tc.days[dk] = &taxCell{score: row.IABScore, name: row.IABCategoryName}
		}
		tc.dayTotals[date] += row.IABScore

		if cell, ok := tc.products[row.IABID]; ok {
			cell.score += row.IABScore
			cell.name = row.IABCategoryName
		} else {
			tc.products[row.IABID] = &taxCell{score: row.IABScore, name: row.IABCategoryName}
		}
		stats.Accept()
	})
	if err != nil {
		return nil, stats, err
	}
	for i := 0; i < skipped; i++ {
		stats.Skip("bad_json")
	}

	out := make(map[string]Taxonomy, len(counts))
	for product, tc := range counts {
		out[product] = buildTaxonomy(tc)
	}
	return out, stats, nil
}

func buildTaxonomy(tc *taxCounts) Taxonomy {
	tax := Taxonomy{
		CampaignDelivery:     []DeliveryEntry{},
		AudienceDistribution: []AudienceEntry{},
	}

	// campaign_delivery: one entry per (date, id); days whose total score
	// is zero are excluded outright, not zero-filled.
	for dk, cell := range tc.days {
		date, id := dk[0], dk[1]
		dayTotal := tc.dayTotals[date]
		if dayTotal == 0 {
			continue
		}
		tax.CampaignDelivery = append(tax.CampaignDelivery, DeliveryEntry{
			Date:    date,
			ID:      id,
			Name:    cell.name,
			Value:   int64(math.Round(cell.score)),
			Percent: ingest.Round4(cell.score / dayTotal * 100),
		})
	}
	sort.Slice(tax.CampaignDelivery, func(i, j int) bool {
		di, dj := tax.CampaignDelivery[i], tax.CampaignDelivery[j]
		if di.Date != dj.Date {
			return di.Date < dj.Date
		}
		return di.ID < dj.ID
	})

	// audience_distribution: per-id totals across all dates, emitted only
	// when the grand total is positive.
	var grand float64
	for _, cell := range tc.products {
		grand += cell.score
	}
	if grand > 0 {
		for id, cell := range tc.products {
			tax.AudienceDistribution = append(tax.AudienceDistribution, AudienceEntry{
				ID:      id,
				Name:    cell.name,
				Value:   int64(math.Round(cell.score)),
				Percent: ingest.Round4(cell.score / grand * 100),
			})
		}
		sort.Slice(tax.AudienceDistribution, func(i, j int) bool {
			ai, aj := tax.AudienceDistribution[i], tax.AudienceDistribution[j]
			if ai.Value != aj.Value {
				return ai.Value > aj.Value
			}
			return ai.Name < aj.Name
		})
	}
	return tax
}
