package models

import "strings"

// RiskLevel classifies a document analysis. The three values are ordered
// by severity and are used consistently for filtering and display.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Matches reports whether the level equals the given filter value,
// compared case-insensitively. The filter "all" matches everything.
func (r RiskLevel) Matches(filter string) bool {
	if filter == "" || strings.EqualFold(filter, "all") {
		return true
	}
	return strings.EqualFold(string(r), filter)
}

// Severity returns the ordinal severity of the level: Low=1, Medium=2,
// High=3, anything else 0.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 0
	}
}

// Analysis is the AI-generated assessment attached to a document.
type Analysis struct {
	DocumentType    string    `json:"document_type"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Summary         string    `json:"summary"`
	KeyClauses      []string  `json:"key_clauses,omitempty"`
	RiskScore       float64   `json:"risk_score,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
}

// Document is an uploaded legal document. A document with a nil Analysis
// is pending: the analysis is produced asynchronously by the backend.
type Document struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	UploadedAt string    `json:"uploaded_at"`
	Size       string    `json:"size,omitempty"`
	Analysis   *Analysis `json:"analysis,omitempty"`

	// Placeholder marks a record fabricated locally after a failed or
	// simulated upload. It never travels over the wire.
	Placeholder bool `json:"-"`
}

// Pending reports whether the document still awaits analysis.
func (d Document) Pending() bool {
	return d.Analysis == nil
}

// MatchesRisk reports whether the document passes a risk-level filter.
// Documents without an analysis only pass the "all" filter, matching how
// the product treats pending documents.
func (d Document) MatchesRisk(filter string) bool {
	if filter == "" || strings.EqualFold(filter, "all") {
		return true
	}
	if d.Analysis == nil {
		return false
	}
	return d.Analysis.RiskLevel.Matches(filter)
}
