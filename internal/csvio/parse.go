package csvio

import (
	"strconv"
	"strings"
)

// ParseInt64Or parses s as an int64, tolerating surrounding whitespace and
// thousands separators and falling back to a float parse for exports that
// write whole counts as "123.0". Returns def when parsing fails.
func ParseInt64Or(s string, def int64) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return def
		}
		return int64(f)
	}
	return v
}

// ParseFloat parses s strictly; ok is false when the field is empty or
// malformed so the caller can skip the row.
func ParseFloat(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
