// Package model holds the record types shared between ingestion tasks and
// the vision assembler.
package model

import "strings"

// DemographicBin is one line of the demographics intermediate: rounded
// impressions for a (product, date, gender, age-bin) cell.
type DemographicBin struct {
	InsertionOrder string `json:"insertionOrder"`
	Date           string `json:"date"`
	Gender         string `json:"gender"`
	Age            string `json:"age"`
	Impressions    int64  `json:"impressions"`
}

// ScoredTaxonomy is one line of the IAB-scored intermediate: the weighted
// score accumulated for a (product, date, taxonomy-id) cell.
type ScoredTaxonomy struct {
	InsertionOrder  string  `json:"insertionOrder"`
	Date            string  `json:"date"`
	IABID           string  `json:"iabId"`
	IABCategoryName string  `json:"iabcategoryName"`
	IABScore        float64 `json:"iabscore"`
}

// ProductKey derives the join key shared by every dataset: the prefix of
// the Insertion Order field before its first underscore.
func ProductKey(insertionOrder string) string {
	key, _, _ := strings.Cut(strings.TrimSpace(insertionOrder), "_")
	return key
}
