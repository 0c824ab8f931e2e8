package ingest

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/sells-group/vision-cli/internal/model"
)

// AgeBins are the seven fixed output bins, in report order.
var AgeBins = []string{"-18", "18-24", "25-34", "35-44", "45-54", "55-64", "+65"}

var binOrder = map[string]int{
	"-18": 0, "18-24": 1, "25-34": 2, "35-44": 3, "45-54": 4, "55-64": 5, "+65": 6,
}

// BinForYear maps a single year of age to its output bin.
func BinForYear(year int) string {
	switch {
	case year < 18:
		return "-18"
	case year <= 24:
		return "18-24"
	case year <= 34:
		return "25-34"
	case year <= 44:
		return "35-44"
	case year <= 54:
		return "45-54"
	case year <= 64:
		return "55-64"
	default:
		return "+65"
	}
}

// SpreadAge redistributes a row's impressions across the output bins
// according to the shape of its age token:
//
//   - "-N" / "<=N": uniform across years 0..N inclusive.
//   - "N+" / ">=N" with N >= 65: everything lands in +65.
//   - "N+" / ">=N" with N < 65: uniform across years N..64, and the +65
//     bin receives exactly one extra year's share, not the remainder.
//   - "A-B": uniform across years A..B inclusive.
//
// Any other token is unrecognized and the row is dropped (ok = false).
// The per-bin amounts always sum to impressions.
func SpreadAge(token string, impressions float64) (map[string]float64, bool) {
	token = strings.ReplaceAll(strings.TrimSpace(token), " ", "")
	if token == "" {
		return nil, false
	}

	bins := make(map[string]float64)

	switch {
	case strings.HasPrefix(token, "<="), strings.HasPrefix(token, "-"):
		bound, err := strconv.Atoi(strings.TrimPrefix(strings.TrimPrefix(token, "<="), "-"))
		if err != nil || bound < 0 {
			return nil, false
		}
		share := impressions / float64(bound+1)
		for y := 0; y <= bound; y++ {
			bins[BinForYear(y)] += share
		}
		return bins, true

	case strings.HasSuffix(token, "+"), strings.HasPrefix(token, ">="):
		bound, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSuffix(token, "+"), ">="))
		if err != nil || bound < 0 {
			return nil, false
		}
		if bound >= 65 {
			bins["+65"] = impressions
			return bins, true
		}
		// Years bound..64 plus a single unit for +65.
		share := impressions / float64(64-bound+2)
		for y := bound; y <= 64; y++ {
			bins[BinForYear(y)] += share
		}
		bins["+65"] += share
		return bins, true

	case strings.Contains(token, "-"):
		lo, hi, _ := strings.Cut(token, "-")
		a, errA := strconv.Atoi(lo)
		b, errB := strconv.Atoi(hi)
		if errA != nil || errB != nil || a > b || a < 0 {
			return nil, false
		}
		share := impressions / float64(b-a+1)
		for y := a; y <= b; y++ {
			bins[BinForYear(y)] += share
		}
		return bins, true
	}

	return nil, false
}

type ageKey struct {
	product string
	date    string
	gender  string
	bin     string
}

// AgeAccumulator sums fractional impressions per (product, date, gender,
// bin). Rounding happens once, at emission.
type AgeAccumulator struct {
	sums map[ageKey]float64
}

// NewAgeAccumulator creates an empty accumulator.
func NewAgeAccumulator() *AgeAccumulator {
	return &AgeAccumulator{sums: make(map[ageKey]float64)}
}

// Add redistributes one row. Returns false when the age token is
// unrecognized and the row was dropped.
func (a *AgeAccumulator) Add(product, date, gender, token string, impressions float64) bool {
	bins, ok := SpreadAge(token, impressions)
	if !ok {
		return false
	}
	for bin, amount := range bins {
		a.sums[ageKey{product, date, gender, bin}] += amount
	}
	return true
}

// Rows emits the accumulated cells as intermediate records, impressions
// rounded to the nearest integer, sorted by product, date, gender, then
// bin order.
func (a *AgeAccumulator) Rows() []model.DemographicBin {
	keys := make([]ageKey, 0, len(a.sums))
	for k := range a.sums {
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
		if ki.gender != kj.gender {
			return ki.gender < kj.gender
		}
		return binOrder[ki.bin] < binOrder[kj.bin]
	})

	rows := make([]model.DemographicBin, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, model.DemographicBin{
			InsertionOrder: k.product,
			Date:           k.date,
			Gender:         k.gender,
			Age:            k.bin,
			Impressions:    int64(math.Round(a.sums[k])),
		})
	}
	return rows
}
