package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoAccountSession_OmitsPassword(t *testing.T) {
	a := DemoAccount{ID: 1, Name: "John Smith", Email: "demo@clausecraft.com", Password: "demo123", Role: "admin"}
	s := a.Session()

	assert.Equal(t, Session{ID: 1, Name: "John Smith", Email: "demo@clausecraft.com", Role: "admin"}, s)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "demo123")
}

func TestRiskLevelMatches(t *testing.T) {
	tests := []struct {
		level  RiskLevel
		filter string
		want   bool
	}{
		{RiskHigh, "high", true},
		{RiskHigh, "High", true},
		{RiskHigh, "low", false},
		{RiskLow, "all", true},
		{RiskMedium, "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.Matches(tt.filter), "%s vs %q", tt.level, tt.filter)
	}
}

func TestRiskLevelSeverityOrdering(t *testing.T) {
	assert.Less(t, RiskLow.Severity(), RiskMedium.Severity())
	assert.Less(t, RiskMedium.Severity(), RiskHigh.Severity())
	assert.Zero(t, RiskLevel("bogus").Severity())
}

func TestDocumentMatchesRisk_PendingOnlyMatchesAll(t *testing.T) {
	d := Document{ID: "1", Filename: "x.pdf"}
	assert.True(t, d.Pending())
	assert.True(t, d.MatchesRisk("all"))
	assert.False(t, d.MatchesRisk("high"))
}

func TestClauseTagAndStatusFilters(t *testing.T) {
	c := Clause{Name: "Standard Confidentiality", Tags: []string{"Confidentiality", "NDA"}, Status: ClauseApproved}

	assert.True(t, c.HasTag("NDA"))
	assert.False(t, c.HasTag("nda"), "tag matching is exact")
	assert.True(t, c.MatchesStatus("all"))
	assert.True(t, c.MatchesStatus("approved"))
	assert.False(t, c.MatchesStatus("draft"))
}

func TestProgressTallies(t *testing.T) {
	changes := []NegotiationChange{
		{ID: "1", Status: ChangePending},
		{ID: "2", Status: ChangeAccepted},
		{ID: "3", Status: ChangeAccepted},
		{ID: "4", Status: ChangeRejected},
	}

	p := Progress(changes)
	assert.Equal(t, NegotiationProgress{Proposed: 4, Accepted: 2, Rejected: 1, Pending: 1}, p)
}

func TestAnalysisJSONFieldNames(t *testing.T) {
	a := Analysis{DocumentType: "Service Agreement", RiskLevel: RiskMedium, Summary: "s", KeyClauses: []string{"Payment Terms"}, RiskScore: 0.6}
	b, err := json.Marshal(a)
	require.NoError(t, err)

	for _, key := range []string{`"document_type"`, `"risk_level"`, `"key_clauses"`, `"risk_score"`} {
		assert.Contains(t, string(b), key)
	}
}
