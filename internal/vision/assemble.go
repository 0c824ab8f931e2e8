package vision

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/vision-cli/internal/csvio"
	"github.com/sells-group/vision-cli/internal/ingest"
)

// Options configures one assembler run.
type Options struct {
	Delimiter byte
	Encoding  string
	Provider  string
	Overrides map[string]map[string]int // per-file column-index overrides

	DeviceMinShare float64

	DevicePath       string
	DemographicsPath string // JSONL intermediate
	UniquePath       string
	CategoriesPath   string
	TaxonomyPath     string // JSONL intermediate
	OutputDir        string
}

// Assembler runs the five ingestion passes and merges their per-product
// partials into one vision document per product.
type Assembler struct {
	opts Options
}

// New creates an Assembler.
func New(opts Options) *Assembler {
	return &Assembler{opts: opts}
}

// Result summarizes a completed run.
type Result struct {
	Products []string
	Stats    map[string]*ingest.RowStats
}

// Run executes all passes and writes one document per product to the
// output directory. The passes run concurrently; each keeps its
// accumulators local until the single merge point, so the aggregates stay
// order-independent.
func (a *Assembler) Run(ctx context.Context) (*Result, error) {
	var (
		devices map[string]map[string]float64
		demo    map[string]Demo
		perDay  map[string][]DayMetrics
		totals  map[string]Totals
		props   map[string][]KeyProperty
		tax     map[string]Taxonomy

		deviceStats, demoStats, engStats, propStats, taxStats *ingest.RowStats
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		devices, deviceStats, err = a.devicesPass()
		return err
	})
	g.Go(func() error {
		var err error
		demo, demoStats, err = a.demoPass()
		return err
	})
	g.Go(func() error {
		var err error
		perDay, totals, engStats, err = a.engagementPass()
		return err
	})
	g.Go(func() error {
		var err error
		props, propStats, err = a.keyPropsPass()
		return err
	})
	g.Go(func() error {
		var err error
		tax, taxStats, err = a.taxonomyPass()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "vision: ingestion pass")
	}

	stats := map[string]*ingest.RowStats{
		"devices":        deviceStats,
		"demographics":   demoStats,
		"engagement":     engStats,
		"key_properties": propStats,
		"taxonomy":       taxStats,
	}

	for name, st := range stats {
		zap.L().Info("vision: pass complete", append([]zap.Field{zap.String("pass", name)}, st.Fields()...)...)
	}

	products := a.merge(devices, demo, perDay, totals, props, tax)
	keys := make([]string, 0, len(products))
	for k := range products {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, id := range keys {
		doc := Document{Data: DataSection{Products: map[string]*Product{id: products[id]}}}
		path := filepath.Join(a.opts.OutputDir, id+".json")
		if err := csvio.WriteJSON(path, doc); err != nil {
			return nil, eris.Wrapf(err, "vision: write document for %s", id)
		}
		zap.L().Info("vision: document written", zap.String("product", id), zap.String("path", path))
	}

	return &Result{Products: keys, Stats: stats}, nil
}

// merge unions the per-pass partials by product key. Each pass owns a
// disjoint part of the document, so the union is order-independent.
func (a *Assembler) merge(
	devices map[string]map[string]float64,
	demo map[string]Demo,
	perDay map[string][]DayMetrics,
	totals map[string]Totals,
	props map[string][]KeyProperty,
	tax map[string]Taxonomy,
) map[string]*Product {
	products := make(map[string]*Product)
	get := func(id string) *Product {
		p, ok := products[id]
		if !ok {
			p = &Product{
				ByDevices:     map[string]float64{},
				Entities:      []any{},
				KeyProperties: []KeyProperty{},
				PerDay:        []DayMetrics{},
				ContentTaxonomy: Taxonomy{
					CampaignDelivery:     []DeliveryEntry{},
					AudienceDistribution: []AudienceEntry{},
				},
			}
			products[id] = p
		}
		return p
	}

	for id, shares := range devices {
		get(id).ByDevices = shares
	}
	for id, d := range demo {
		get(id).Demo = d
	}
	for id, rows := range perDay {
		get(id).PerDay = rows
	}
	for id, t := range totals {
		get(id).Totals = t
	}
	for id, kp := range props {
		get(id).KeyProperties = kp
	}
	for id, tx := range tax {
		get(id).ContentTaxonomy = tx
	}
	return products
}
