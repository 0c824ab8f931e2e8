package model

import "strings"

// NormalizeDate rewrites YYYY-MM-DD, YYYY/MM/DD, MM-DD-YYYY and MM/DD/YYYY
// into YYYY-MM-DD. Anything else passes through unchanged so an odd vendor
// date never drops a row.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return s
	}

	switch {
	case len(parts[0]) == 4:
		return parts[0] + "-" + pad2(parts[1]) + "-" + pad2(parts[2])
	case len(parts[2]) == 4:
		return parts[2] + "-" + pad2(parts[0]) + "-" + pad2(parts[1])
	default:
		return s
	}
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
