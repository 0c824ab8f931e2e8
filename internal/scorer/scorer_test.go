package scorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = Config{MinScore: 0.4, Separator: '/'}

func testDict() Dictionary {
	return Dictionary{
		"arts": {
			{ID: "IAB1", Name: "Arts & Entertainment", Score: 0.5},
			{ID: "IAB1-6", Name: "Music", Score: 0.3},
		},
		"news": {
			{ID: "IAB12", Name: "News", Score: 0.9},
		},
	}
}

func TestScore_ThresholdFiltersCandidates(t *testing.T) {
	acc := NewAccumulator()
	applied := acc.Score("P1", "2024-01-01", "Arts/Music", 100, testDict(), testCfg)

	// Only the 0.5 candidate clears minscore 0.4.
	assert.Equal(t, 1, applied)
	rows := acc.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "IAB1", rows[0].IABID)
	assert.InDelta(t, 50.0, rows[0].IABScore, 1e-9) // 100 × 0.5
}

func TestScore_OnlyTier1Matters(t *testing.T) {
	acc := NewAccumulator()
	a := acc.Score("P1", "2024-01-01", "News/Politics/Local", 10, testDict(), testCfg)
	assert.Equal(t, 1, a)
	assert.Equal(t, "IAB12", acc.Rows()[0].IABID)
}

func TestScore_DictionaryMissSkipped(t *testing.T) {
	acc := NewAccumulator()
	assert.Zero(t, acc.Score("P1", "2024-01-01", "Gardening/Tools", 10, testDict(), testCfg))
	assert.Zero(t, acc.Score("P1", "2024-01-01", "", 10, testDict(), testCfg))
	assert.Empty(t, acc.Rows())
}

func TestScore_LookupCaseInsensitive(t *testing.T) {
	acc := NewAccumulator()
	assert.Equal(t, 1, acc.Score("P1", "2024-01-01", "NEWS/World", 10, testDict(), testCfg))
}

func TestScore_AccumulatesAcrossRows(t *testing.T) {
	acc := NewAccumulator()
	acc.Score("P1", "2024-01-01", "News", 10, testDict(), testCfg)
	acc.Score("P1", "2024-01-01", "News", 20, testDict(), testCfg)
	acc.Score("P1", "2024-01-02", "News", 40, testDict(), testCfg)

	rows := acc.Rows()
	require.Len(t, rows, 2)
	assert.InDelta(t, 27.0, rows[0].IABScore, 1e-9) // (10+20) × 0.9
	assert.InDelta(t, 36.0, rows[1].IABScore, 1e-9) // 40 × 0.9
	assert.Equal(t, 1, acc.Products())
}

func TestScore_LastNameWins(t *testing.T) {
	dict := Dictionary{
		"arts": {{ID: "IAB1", Name: "Arts", Score: 0.5}},
		"news": {{ID: "IAB1", Name: "Arts & Entertainment", Score: 0.5}},
	}
	acc := NewAccumulator()
	acc.Score("P1", "2024-01-01", "Arts", 10, dict, testCfg)
	acc.Score("P1", "2024-01-01", "News", 10, dict, testCfg)

	rows := acc.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Arts & Entertainment", rows[0].IABCategoryName)
	assert.InDelta(t, 10.0, rows[0].IABScore, 1e-9) // scores still accumulate
}

func TestScore_DVProviderPathCorrection(t *testing.T) {
	cfg := Config{MinScore: 0.4, Separator: '/', Provider: "dv"}
	acc := NewAccumulator()
	// The dv export prepends a separator; tier1 must still resolve.
	assert.Equal(t, 1, acc.Score("P1", "2024-01-01", "/News/World", 10, testDict(), cfg))
}

func TestRows_Sorted(t *testing.T) {
	acc := NewAccumulator()
	acc.Score("P2", "2024-01-01", "News", 1, testDict(), testCfg)
	acc.Score("P1", "2024-01-02", "News", 1, testDict(), testCfg)
	acc.Score("P1", "2024-01-01", "Arts", 1, testDict(), testCfg)

	rows := acc.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "P1", rows[0].InsertionOrder)
	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, "P1", rows[1].InsertionOrder)
	assert.Equal(t, "2024-01-02", rows[1].Date)
	assert.Equal(t, "P2", rows[2].InsertionOrder)
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.jsonl")
	content := `{"tier1":"Arts","iab":[{"id":"IAB1","name":"Arts","score":0.8}]}` + "\n" +
		`{"tier1":"News","iab":[{"id":12,"name":"News","score":0.9}]}` + "\n" +
		"garbage\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	dict, skipped, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, dict, 2)

	// Numeric ids normalize to their decimal string form.
	cands := dict.Lookup("news")
	require.Len(t, cands, 1)
	assert.Equal(t, "12", cands[0].ID)

	assert.Len(t, dict.Lookup(" ARTS "), 1)
}

func TestLoadDictionary_Missing(t *testing.T) {
	_, _, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}
