// Package dto defines the JSON request and response bodies of the v1 API.
package dto

// Match is one ranked suggestion.
type Match struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Context string `json:"context,omitempty"`
	Quality int    `json:"quality"`
}

// SuggestResponse is the body of a suggestion lookup.
type SuggestResponse struct {
	Matches []Match `json:"matches"`
}

// UnitUpload is the body of a single-unit upsert.
type UnitUpload struct {
	Target  string `json:"target"`
	Context string `json:"context,omitempty"`
}

// UnitRecord is one unit of a bulk store upload.
type UnitRecord struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Context string `json:"context,omitempty"`
}

// StoreUploadResponse reports how many units a bulk upload attempted.
type StoreUploadResponse struct {
	Count int `json:"count"`
}

// StatsResponse reports the number of stored translations.
type StatsResponse struct {
	Records int64 `json:"records"`
}
