package models

// Workflow is an approval workflow attached to a document.
type Workflow struct {
	ID         int              `json:"id"`
	DocumentID int              `json:"document_id"`
	Status     string           `json:"status"`
	Steps      []map[string]any `json:"steps,omitempty"`
	CreatedAt  string           `json:"created_at,omitempty"`
}

// WorkflowStartResult is the body returned by POST /{documentId}/workflow/start.
type WorkflowStartResult struct {
	WorkflowID int    `json:"workflow_id"`
	Status     string `json:"status"`
}

// ExplainRequest asks the backend to explain a clause in plain language.
type ExplainRequest struct {
	ClauseText      string `json:"clause_text"`
	ExplanationType string `json:"explanation_type,omitempty"`
}

// ExplainResponse is a plain-language clause explanation.
type ExplainResponse struct {
	Explanation string   `json:"explanation"`
	Confidence  float64  `json:"confidence"`
	Citations   []string `json:"citations,omitempty"`
}

// RedlineRequest asks for a suggested redline of a clause.
type RedlineRequest struct {
	ClauseText string `json:"clause_text"`
	Position   string `json:"position,omitempty"`
}

// AlternativesRequest asks for alternative phrasings of a clause.
type AlternativesRequest struct {
	ClauseText string `json:"clause_text"`
	Count      int    `json:"count,omitempty"`
}

// RiskAnalysisRequest asks for a risk assessment of raw document text.
type RiskAnalysisRequest struct {
	DocumentText string `json:"document_text"`
}
