// Package scorer joins category tiers against the precomputed tier1→IAB
// similarity dictionary and aggregates weighted taxonomy scores.
package scorer

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sells-group/vision-cli/internal/csvio"
)

// Candidate is one taxonomy entry from the similarity dictionary, already
// top-K limited by the external dictionary builder.
type Candidate struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// UnmarshalJSON accepts both string and numeric taxonomy ids.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID    any     `json:"id"`
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch v := aux.ID.(type) {
	case string:
		c.ID = v
	case float64:
		c.ID = strconv.FormatInt(int64(v), 10)
	}
	c.Name = aux.Name
	c.Score = aux.Score
	return nil
}

type dictEntry struct {
	Tier1 string      `json:"tier1"`
	IAB   []Candidate `json:"iab"`
}

// Dictionary maps lowercased tier1 strings to their candidate taxonomy
// entries. Consumed read-only.
type Dictionary map[string][]Candidate

// LoadDictionary reads the tier1→IAB dictionary JSONL. Unparseable lines
// are skipped and counted; entries without a tier1 key are ignored.
func LoadDictionary(path string) (Dictionary, int, error) {
	dict := make(Dictionary)
	skipped, err := csvio.ReadJSONL(path, func(e dictEntry) {
		tier1 := strings.ToLower(strings.TrimSpace(e.Tier1))
		if tier1 == "" {
			return
		}
		dict[tier1] = e.IAB
	})
	if err != nil {
		return nil, skipped, err
	}
	return dict, skipped, nil
}

// Lookup returns the candidates for a tier1 string, case-insensitively.
func (d Dictionary) Lookup(tier1 string) []Candidate {
	return d[strings.ToLower(strings.TrimSpace(tier1))]
}
