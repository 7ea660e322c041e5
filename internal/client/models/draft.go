package models

// DraftRequest is the payload for POST /drafts.
type DraftRequest struct {
	ContractType string            `json:"contract_type"`
	Parties      map[string]string `json:"parties"`
	Jurisdiction string            `json:"jurisdiction"`
	ScopeShort   string            `json:"scope_short"`
	PaymentTerms string            `json:"payment_terms"`
	RiskProfile  string            `json:"risk_profile"`
}

// Draft is a generated contract draft.
type Draft struct {
	DraftID string           `json:"draft_id"`
	Content string           `json:"content"`
	Summary string           `json:"summary"`
	Clauses []map[string]any `json:"clauses,omitempty"`
}

// DraftUpdate carries edited draft content for PUT /drafts/{id}.
type DraftUpdate struct {
	Content string `json:"content"`
}

// SimulateRequest asks the backend to assess the impact of editing a
// clause inside a draft.
type SimulateRequest struct {
	OriginalClause string `json:"original_clause"`
	ModifiedClause string `json:"modified_clause"`
}

// SimulateResponse is the impact assessment of a simulated clause change.
type SimulateResponse struct {
	ImpactAnalysis  map[string]any `json:"impact_analysis"`
	RiskAssessment  float64        `json:"risk_assessment"`
	Recommendations []string       `json:"recommendations"`
}
