package models

import "strings"

// ClauseStatus is the review state of a library clause.
type ClauseStatus string

const (
	ClauseDraft    ClauseStatus = "draft"
	ClauseApproved ClauseStatus = "approved"
)

// Clause is an entry in the clause library. Tags form a non-exclusive
// many-to-many relation; filtering by tag is a membership test.
type Clause struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Text        string       `json:"text,omitempty"`
	Tags        []string     `json:"tags"`
	LastUpdated string       `json:"last_updated"`
	Status      ClauseStatus `json:"status"`
	RiskScore   float64      `json:"risk_score,omitempty"`
}

// HasTag reports whether the clause carries the given tag (exact match).
func (c Clause) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesStatus reports whether the clause passes a status tab filter
// ("all", "approved" or "draft").
func (c Clause) MatchesStatus(tab string) bool {
	if tab == "" || strings.EqualFold(tab, "all") {
		return true
	}
	return strings.EqualFold(string(c.Status), tab)
}
