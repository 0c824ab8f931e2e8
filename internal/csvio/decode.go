// Package csvio reads vendor CSV exports: quote-aware line splitting,
// header auto-detection, provider-specific termination rules, and JSONL
// intermediates with atomic writes.
package csvio

import "strings"

// SplitLine splits a single CSV line into fields on delim.
//
// Lines without a double quote take the fast path of a plain split. The
// quote-aware path treats a doubled quote inside a quoted section as a
// literal quote and only splits on delim outside quotes. Malformed input
// is never an error: an unterminated quote consumes the rest of the line.
func SplitLine(line string, delim byte) []string {
	if !strings.ContainsRune(line, '"') {
		return strings.Split(line, string(delim))
	}

	var fields []string
	var b strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				b.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	fields = append(fields, b.String())
	return fields
}
