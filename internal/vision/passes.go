package vision

import (
	"sort"
	"strings"

	"github.com/sells-group/vision-cli/internal/csvio"
	"github.com/sells-group/vision-cli/internal/ingest"
	"github.com/sells-group/vision-cli/internal/model"
)

// pct is a guarded percentage: zero denominator yields 0, never NaN.
func pct(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return ingest.Round4(num / den * 100)
}

func (a *Assembler) scanOpts(file string, fields []csvio.Field) csvio.ScanOptions {
	return csvio.ScanOptions{
		Delimiter: a.opts.Delimiter,
		Encoding:  a.opts.Encoding,
		Provider:  a.opts.Provider,
		Fields:    fields,
		Overrides: a.opts.Overrides[file],
		Probe:     ingest.ProbeField,
	}
}

// devicesPass aggregates device.csv into per-product bucket shares.
func (a *Assembler) devicesPass() (map[string]map[string]float64, *ingest.RowStats, error) {
	s, err := csvio.Open(a.opts.DevicePath, a.scanOpts("device", ingest.DeviceFields))
	if err != nil {
		return nil, nil, err
	}
	defer s.Close() //nolint:errcheck

	acc := ingest.NewDeviceAccumulator()
	stats := &ingest.RowStats{}
	for s.Scan() {
		product := model.ProductKey(s.Get(ingest.FieldInsertionOrder))
		if product == "" {
			stats.Skip("missing_insertion_order")
			continue
		}
		imp, ok := csvio.ParseFloat(s.Get(ingest.FieldImpressions))
		if !ok {
			stats.Skip("bad_impressions")
			continue
		}
		acc.Add(product, s.Get(ingest.FieldDeviceType), imp)
		stats.Accept()
	}
	if err := s.Err(); err != nil {
		return nil, stats, err
	}
	return acc.Shares(a.opts.DeviceMinShare), stats, nil
}

type demoCounts struct {
	male   float64
	female float64
	bins   map[string]float64
}

// demoPass folds the demographics intermediate into per-product gender and
// age shares. Gender percentages use male+female as the denominator; any
// other gender value is excluded from both sides. Age percentages are over
// the six named bins, the under-18 bin excluded entirely.
func (a *Assembler) demoPass() (map[string]Demo, *ingest.RowStats, error) {
	counts := make(map[string]*demoCounts)
	stats := &ingest.RowStats{}

	skipped, err := csvio.ReadJSONL(a.opts.DemographicsPath, func(bin model.DemographicBin) {
		product := model.ProductKey(bin.InsertionOrder)
		if product == "" {
			stats.Skip("missing_insertion_order")
			return
		}
		dc, ok := counts[product]
		if !ok {
			dc = &demoCounts{bins: make(map[string]float64)}
			counts[product] = dc
		}
		imp := float64(bin.Impressions)
		switch {
		case strings.EqualFold(bin.Gender, "male"):
			dc.male += imp
		case strings.EqualFold(bin.Gender, "female"):
			dc.female += imp
		}
		dc.bins[bin.Age] += imp
		stats.Accept()
	})
	if err != nil {
		return nil, stats, err
	}
	for i := 0; i < skipped; i++ {
		stats.Skip("bad_json")
	}

	out := make(map[string]Demo, len(counts))
	for product, dc := range counts {
		genderDen := dc.male + dc.female
		ageDen := dc.bins["18-24"] + dc.bins["25-34"] + dc.bins["35-44"] +
			dc.bins["45-54"] + dc.bins["55-64"] + dc.bins["+65"]
		out[product] = Demo{
			GenderMale:   pct(dc.male, genderDen),
			GenderFemale: pct(dc.female, genderDen),
			Age18_24:     pct(dc.bins["18-24"], ageDen),
			Age25_34:     pct(dc.bins["25-34"], ageDen),
			Age35_44:     pct(dc.bins["35-44"], ageDen),
			Age45_54:     pct(dc.bins["45-54"], ageDen),
			Age55_64:     pct(dc.bins["55-64"], ageDen),
			Age65Plus:    pct(dc.bins["+65"], ageDen),
		}
	}
	return out, stats, nil
}

type engCounts struct {
	impressions int64
	clicks      int64
	viewable    int64
	unique      int64
	starts      int64
	views25     int64
	views50     int64
	views75     int64
	views100    int64
}

func (c *engCounts) add(o engCounts) {
	c.impressions += o.impressions
	c.clicks += o.clicks
	c.viewable += o.viewable
	c.unique += o.unique
	c.starts += o.starts
	c.views25 += o.views25
	c.views50 += o.views50
	c.views75 += o.views75
	c.views100 += o.views100
}

// engagementPass aggregates unique.csv into perDay rows and totals. Totals
// come from summed raw counts so per-day rounding never compounds.
func (a *Assembler) engagementPass() (map[string][]DayMetrics, map[string]Totals, *ingest.RowStats, error) {
	s, err := csvio.Open(a.opts.UniquePath, a.scanOpts("unique", ingest.UniqueFields))
	if err != nil {
		return nil, nil, nil, err
	}
	defer s.Close() //nolint:errcheck

	type dayKey struct{ product, date string }
	days := make(map[dayKey]*engCounts)
	stats := &ingest.RowStats{}

	for s.Scan() {
		product := model.ProductKey(s.Get(ingest.FieldInsertionOrder))
		if product == "" {
			stats.Skip("missing_insertion_order")
			continue
		}
		imp, ok := csvio.ParseFloat(s.Get(ingest.FieldImpressions))
		if !ok {
			stats.Skip("bad_impressions")
			continue
		}
		row := engCounts{
			impressions: int64(imp),
			clicks:      csvio.ParseInt64Or(s.Get(ingest.FieldClicks), 0),
			viewable:    csvio.ParseInt64Or(s.Get(ingest.FieldViewable), 0),
			unique:      csvio.ParseInt64Or(s.Get(ingest.FieldUnique), 0),
			starts:      csvio.ParseInt64Or(s.Get(ingest.FieldVideoStarts), 0),
			views25:     csvio.ParseInt64Or(s.Get(ingest.FieldVideoViews25), 0),
			views50:     csvio.ParseInt64Or(s.Get(ingest.FieldVideoViews50), 0),
			views75:     csvio.ParseInt64Or(s.Get(ingest.FieldVideoViews75), 0),
			views100:    csvio.ParseInt64Or(s.Get(ingest.FieldVideoViews100), 0),
		}
		key := dayKey{product, model.NormalizeDate(s.Get(ingest.FieldDate))}
		if cur, ok := days[key]; ok {
			cur.add(row)
		} else {
			c := row
			days[key] = &c
		}
		stats.Accept()
	}
	if err := s.Err(); err != nil {
		return nil, nil, stats, err
	}

	perDay := make(map[string][]DayMetrics)
	totals := make(map[string]*engCounts)
	for key, c := range days {
		perDay[key.product] = append(perDay[key.product], DayMetrics{
			Date:                key.date,
			Impressions:         c.impressions,
			Clicks:              c.clicks,
			ViewableImpressions: c.viewable,
			UniqueImpressions:   c.unique,
			VideoStarts:         c.starts,
			VideoViews25:        c.views25,
			VideoViews50:        c.views50,
			VideoViews75:        c.views75,
			VideoViews100:       c.views100,
			Viewability:         pct(float64(c.viewable), float64(c.impressions)),
			VTR:                 pct(float64(c.views100), float64(c.starts)),
			CTR:                 pct(float64(c.clicks), float64(c.impressions)),
		})
		if cur, ok := totals[key.product]; ok {
			cur.add(*c)
		} else {
			t := *c
			totals[key.product] = &t
		}
	}
	for product := range perDay {
		rows := perDay[product]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	}

	out := make(map[string]Totals, len(totals))
	for product, c := range totals {
		out[product] = Totals{
			Impressions:         c.impressions,
			Clicks:              c.clicks,
			ViewableImpressions: c.viewable,
			UniqueImpressions:   c.unique,
			VideoStarts:         c.starts,
			VideoViews25:        c.views25,
			VideoViews50:        c.views50,
			VideoViews75:        c.views75,
			VideoViews100:       c.views100,
			Viewability:         pct(float64(c.viewable), float64(c.impressions)),
			VTR:                 pct(float64(c.views100), float64(c.starts)),
			CTR:                 pct(float64(c.clicks), float64(c.impressions)),
		}
	}
	return perDay, out, stats, nil
}

// keyPropsPass groups categories.csv by app/URL per product, summing raw
// counts verbatim.
func (a *Assembler) keyPropsPass() (map[string][]KeyProperty, *ingest.RowStats, error) {
	s, err := csvio.Open(a.opts.CategoriesPath, a.scanOpts("categories", ingest.CategoryFields))
	if err != nil {
		return nil, nil, err
	}
	defer s.Close() //nolint:errcheck

	type propKey struct{ product, name string }
	sums := make(map[propKey]*KeyProperty)
	stats := &ingest.RowStats{}

	for s.Scan() {
		product := model.ProductKey(s.Get(ingest.FieldInsertionOrder))
		if product == "" {
			stats.Skip("missing_insertion_order")
			continue
		}
		name := s.Get(ingest.FieldAppURL)
		if name == "" {
			stats.Skip("missing_app_url")
			continue
		}
		imp, ok := csvio.ParseFloat(s.Get(ingest.FieldImpressions))
		if !ok {
			stats.Skip("bad_impressions")
			continue
		}
		key := propKey{product, name}
		kp, ok := sums[key]
		if !ok {
			kp = &KeyProperty{Name: name}
			sums[key] = kp
		}
		kp.Impressions += int64(imp)
		kp.Clicks += csvio.ParseInt64Or(s.Get(ingest.FieldClicks), 0)
		kp.ViewableImpressions += csvio.ParseInt64Or(s.Get(ingest.FieldViewable), 0)
		stats.Accept()
	}
	if err := s.Err(); err != nil {
		return nil, stats, err
	}

	out := make(map[string][]KeyProperty)
	for key, kp := range sums {
		out[key.product] = append(out[key.product], *kp)
	}
	for product := range out {
		props := out[product]
		sort.Slice(props, func(i, j int) bool {
			if props[i].Impressions != props[j].Impressions {
				return props[i].Impressions > props[j].Impressions
			}
			return props[i].Name < props[j].Name
		})
	}
	return out, stats, nil
}
