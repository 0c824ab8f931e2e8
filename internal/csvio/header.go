package csvio

import "strings"

// Field declares one semantic column of a source file: the labels it may
// carry in a header row and the positional index to fall back on when no
// header is present. The first label is the canonical one.
type Field struct {
	Name    string
	Labels  []string
	Default int
}

// Columns maps semantic field names to resolved column indices.
type Columns map[string]int

// Get returns the value of the named field in record, or "" when the
// record is too short or the field is unknown.
func (c Columns) Get(record []string, name string) string {
	idx, ok := c[name]
	if !ok || idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// Resolve maps each field to a column index. Resolution order: an explicit
// override wins unconditionally, then a case-insensitive label match against
// the header tokens, then the field's positional default. Vendor exports
// reorder columns freely, which is why label matching exists at all.
func Resolve(header []string, fields []Field, overrides map[string]int) Columns {
	byLabel := make(map[string]int, len(header))
	for i, col := range header {
		byLabel[strings.ToLower(strings.TrimSpace(col))] = i
	}

	cols := make(Columns, len(fields))
	for _, f := range fields {
		if idx, ok := overrides[f.Name]; ok {
			cols[f.Name] = idx
			continue
		}
		resolved := f.Default
		for _, label := range f.Labels {
			if idx, ok := byLabel[strings.ToLower(label)]; ok {
				resolved = idx
				break
			}
		}
		cols[f.Name] = resolved
	}
	return cols
}

// IsHeaderRow reports whether record is the header row rather than data.
// The probe field's value at its resolved index is compared against the
// field's canonical label, case-insensitively.
func IsHeaderRow(record []string, cols Columns, fields []Field, probe string) bool {
	for _, f := range fields {
		if f.Name != probe {
			continue
		}
		return strings.EqualFold(cols.Get(record, probe), f.Labels[0])
	}
	return false
}
