package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testFields = []Field{
	{Name: "insertion_order", Labels: []string{"Insertion Order"}, Default: 0},
	{Name: "date", Labels: []string{"Date"}, Default: 1},
	{Name: "impressions", Labels: []string{"Impressions"}, Default: 2},
}

func TestResolve_LabelMatchHandlesReordering(t *testing.T) {
	header := []string{"Date", "Impressions", "Insertion Order"}
	cols := Resolve(header, testFields, nil)

	assert.Equal(t, 2, cols["insertion_order"])
	assert.Equal(t, 0, cols["date"])
	assert.Equal(t, 1, cols["impressions"])
}

func TestResolve_CaseInsensitive(t *testing.T) {
	header := []string{"  insertion order ", "DATE", "impressions"}
	cols := Resolve(header, testFields, nil)

	assert.Equal(t, 0, cols["insertion_order"])
	assert.Equal(t, 1, cols["date"])
}

func TestResolve_DefaultWhenLabelMissing(t *testing.T) {
	header := []string{"Something", "Else", "Entirely"}
	cols := Resolve(header, testFields, nil)

	assert.Equal(t, 0, cols["insertion_order"])
	assert.Equal(t, 1, cols["date"])
	assert.Equal(t, 2, cols["impressions"])
}

func TestResolve_OverrideIsAuthoritative(t *testing.T) {
	header := []string{"Impressions", "Date", "Insertion Order"}
	cols := Resolve(header, testFields, map[string]int{"impressions": 5})

	// Override wins even though the header names column 0.
	assert.Equal(t, 5, cols["impressions"])
	assert.Equal(t, 2, cols["insertion_order"])
}

func TestColumns_Get_ShortRecord(t *testing.T) {
	cols := Columns{"impressions": 4}
	assert.Equal(t, "", cols.Get([]string{"a", "b"}, "impressions"))
	assert.Equal(t, "", cols.Get([]string{"a", "b"}, "unknown"))
}

func TestIsHeaderRow(t *testing.T) {
	cols := Resolve([]string{"Insertion Order", "Date", "Impressions"}, testFields, nil)

	assert.True(t, IsHeaderRow([]string{"insertion order", "Date", "Impressions"}, cols, testFields, "insertion_order"))
	assert.False(t, IsHeaderRow([]string{"P1_Campaign", "2024-01-01", "100"}, cols, testFields, "insertion_order"))
}
