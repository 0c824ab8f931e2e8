package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"prefix before underscore", "P123_Summer_Campaign", "P123"},
		{"no underscore", "P123", "P123"},
		{"leading underscore", "_Campaign", ""},
		{"trimmed", "  P9_x ", "P9"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductKey(tt.in))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-05", "2024-01-05"},
		{"2024/1/5", "2024-01-05"},
		{"01-05-2024", "2024-01-05"},
		{"1/5/2024", "2024-01-05"},
		{"05.01.2024", "05.01.2024"}, // unrecognized separators pass through
		{"January 5", "January 5"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.in), tt.in)
	}
}
