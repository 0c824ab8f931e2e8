// Package vision assembles the per-product analytics document from the raw
// CSV exports and the JSONL intermediates.
package vision

// Document is the terminal artifact, one per product.
type Document struct {
	Data DataSection `json:"data"`
}

// DataSection wraps the product map.
type DataSection struct {
	Products map[string]*Product `json:"products"`
}

// Product is the merged analytics view of one product key.
type Product struct {
	ByDevices       map[string]float64 `json:"byDevices"`
	Totals          Totals             `json:"totals"`
	Entities        []any              `json:"entities"`
	KeyProperties   []KeyProperty      `json:"keyProperties"`
	Demo            Demo               `json:"demo"`
	ContentTaxonomy Taxonomy           `json:"contentTaxonomy"`
	PerDay          []DayMetrics       `json:"perDay"`
}

// Demo holds gender and age shares. Gender percentages are over
// male+female only; age percentages are over the six named bins, with the
// under-18 bin excluded from numerator and denominator alike.
type Demo struct {
	GenderMale   float64 `json:"gender_male"`
	GenderFemale float64 `json:"gender_female"`
	Age18_24     float64 `json:"age_18_24"`
	Age25_34     float64 `json:"age_25_34"`
	Age35_44     float64 `json:"age_35_44"`
	Age45_54     float64 `json:"age_45_54"`
	Age55_64     float64 `json:"age_55_64"`
	Age65Plus    float64 `json:"age_65_plus"`
}

// DayMetrics is one perDay row.
type DayMetrics struct {
	Date                string  `json:"date"`
	Impressions         int64   `json:"impressions"`
	Clicks              int64   `json:"clicks"`
	ViewableImpressions int64   `json:"viewableImpressions"`
	UniqueImpressions   int64   `json:"uniqueImpressions"`
	VideoStarts         int64   `json:"videoStarts"`
	VideoViews25        int64   `json:"videoViews25"`
	VideoViews50        int64   `json:"videoViews50"`
	VideoViews75        int64   `json:"videoViews75"`
	VideoViews100       int64   `json:"videoViews100"`
	Viewability         float64 `json:"viewability"`
	VTR                 float64 `json:"vtr"`
	CTR                 float64 `json:"ctr"`
}

// Totals carries the same metrics recomputed from summed raw counts, never
// averaged from per-day percentages.
type Totals struct {
	Impressions         int64   `json:"impressions"`
	Clicks              int64   `json:"clicks"`
	ViewableImpressions int64   `json:"viewableImpressions"`
	UniqueImpressions   int64   `json:"uniqueImpressions"`
	VideoStarts         int64   `json:"videoStarts"`
	VideoViews25        int64   `json:"videoViews25"`
	VideoViews50        int64   `json:"videoViews50"`
	VideoViews75        int64   `json:"videoViews75"`
	VideoViews100       int64   `json:"videoViews100"`
	Viewability         float64 `json:"viewability"`
	VTR                 float64 `json:"vtr"`
	CTR                 float64 `json:"ctr"`
}

// KeyProperty is one app/URL group with verbatim summed counts.
type KeyProperty struct {
	Name                string `json:"name"`
	Impressions         int64  `json:"impressions"`
	Clicks              int64  `json:"clicks"`
	ViewableImpressions int64  `json:"viewableImpressions"`
}

// Taxonomy is the contentTaxonomy section.
type Taxonomy struct {
	CampaignDelivery     []DeliveryEntry `json:"campaign_delivery"`
	AudienceDistribution []AudienceEntry `json:"audience_distribution"`
}

// DeliveryEntry is one (date, taxonomy-id) cell of campaign_delivery.
type DeliveryEntry struct {
	Date    string  `json:"date"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Value   int64   `json:"value"`
	Percent float64 `json:"percent"`
}

// AudienceEntry is one taxonomy-id total of audience_distribution.
type AudienceEntry struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Value   int64   `json:"value"`
	Percent float64 `json:"percent"`
}
