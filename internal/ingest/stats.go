// Package ingest implements the per-file ingestion passes: category tier
// extraction, age-range normalization, and device bucketization.
package ingest

import "go.uber.org/zap"

// RowStats records the per-row outcome of an ingestion pass so skips are
// observable instead of silent.
type RowStats struct {
	Accepted int
	Skipped  map[string]int
}

// Accept counts a row that contributed to the pass output.
func (s *RowStats) Accept() { s.Accepted++ }

// Skip counts a dropped row under the given reason.
func (s *RowStats) Skip(reason string) {
	if s.Skipped == nil {
		s.Skipped = make(map[string]int)
	}
	s.Skipped[reason]++
}

// TotalSkipped returns the number of dropped rows across all reasons.
func (s *RowStats) TotalSkipped() int {
	var n int
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// Fields returns zap fields summarizing the pass for structured logs.
func (s *RowStats) Fields() []zap.Field {
	fields := []zap.Field{zap.Int("accepted", s.Accepted)}
	if n := s.TotalSkipped(); n > 0 {
		fields = append(fields,
			zap.Int("skipped", n),
			zap.Any("skip_reasons", s.Skipped),
		)
	}
	return fields
}
