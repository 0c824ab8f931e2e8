package ingest

import (
	"math"
	"strings"
)

// Canonical device buckets.
const (
	DeviceCTV        = "CTV"
	DeviceTablet     = "Tablet"
	DeviceSmartPhone = "Smart Phone"
	DeviceMobile     = "Mobile"
	DeviceDesktop    = "Desktop"
	DeviceOther      = "Other"
)

// NormalizeDevice maps a free-text device label onto a canonical bucket by
// case-insensitive keyword matching. Labels matching no rule pass through
// unchanged.
func NormalizeDevice(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(l, "ctv"), strings.Contains(l, "connected tv"), strings.Contains(l, "smart tv"):
		return DeviceCTV
	case strings.Contains(l, "tablet"):
		return DeviceTablet
	case strings.Contains(l, "phone"):
		return DeviceSmartPhone
	case strings.Contains(l, "mobile"):
		return DeviceMobile
	case strings.Contains(l, "desktop"), strings.Contains(l, "computer"), l == "pc":
		return DeviceDesktop
	case strings.Contains(l, "other"), strings.Contains(l, "unknown"):
		return DeviceOther
	default:
		return strings.TrimSpace(label)
	}
}

// deviceCounts accumulates impressions per bucket for a single product,
// remembering first-seen bucket order because the roll-up tie-break is
// order-sensitive.
type deviceCounts struct {
	sums  map[string]float64
	order []string
	total float64
}

// DeviceAccumulator sums device impressions per product across the whole
// file. Tablet and Smart Phone fold into Mobile at accumulation time, so
// downstream they are indistinguishable from rows labeled Mobile directly.
type DeviceAccumulator struct {
	products map[string]*deviceCounts
}

// NewDeviceAccumulator creates an empty accumulator.
func NewDeviceAccumulator() *DeviceAccumulator {
	return &DeviceAccumulator{products: make(map[string]*deviceCounts)}
}

// Add accumulates one row.
func (d *DeviceAccumulator) Add(product, label string, impressions float64) {
	bucket := NormalizeDevice(label)
	if bucket == DeviceTablet || bucket == DeviceSmartPhone {
		bucket = DeviceMobile
	}

	pc, ok := d.products[product]
	if !ok {
		pc = &deviceCounts{sums: make(map[string]float64)}
		d.products[product] = pc
	}
	if _, seen := pc.sums[bucket]; !seen {
		pc.order = append(pc.order, bucket)
	}
	pc.sums[bucket] += impressions
	pc.total += impressions
}

// Products returns the accumulated product keys.
func (d *DeviceAccumulator) Products() []string {
	keys := make([]string, 0, len(d.products))
	for k := range d.products {
		keys = append(keys, k)
	}
	return keys
}

// Shares computes each product's percentage-of-total per bucket and applies
// the roll-up rule: the bucket with the strictly largest share (first seen
// wins ties) absorbs every other bucket whose share is below minShare
// percentage points. Percentages are rounded to 4 decimals after roll-up.
func (d *DeviceAccumulator) Shares(minShare float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(d.products))
	for product, pc := range d.products {
		out[product] = rollUp(pc, minShare)
	}
	return out
}

func rollUp(pc *deviceCounts, minShare float64) map[string]float64 {
	if pc.total == 0 {
		return map[string]float64{}
	}

	shares := make(map[string]float64, len(pc.sums))
	dominant := ""
	for _, bucket := range pc.order {
		pct := pc.sums[bucket] / pc.total * 100
		shares[bucket] = pct
		if dominant == "" || pct > shares[dominant] {
			dominant = bucket
		}
	}

	for _, bucket := range pc.order {
		if bucket == dominant {
			continue
		}
		if shares[bucket] < minShare {
			shares[dominant] += shares[bucket]
			delete(shares, bucket)
		}
	}

	for bucket, pct := range shares {
		shares[bucket] = Round4(pct)
	}
	return shares
}

// Round4 rounds to 4 decimal places, the precision every percentage metric
// in the vision document carries.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
