// Package api contains the typed REST client for the ClauseCraft backend.
package api

import (
	"context"
	"io"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
)

// TokenSource yields the bearer token to attach to authenticated requests.
// An empty string means the request goes out unauthenticated.
type TokenSource func(ctx context.Context) string

// Client defines the operations the ClauseCraft backend exposes.
//
// Contract:
//   - Login: exchange credentials for a bearer token.
//   - Register: create a new user; does not authenticate.
//   - Profile: fetch the user behind the current token.
//   - Document/Clause/Draft/Workflow/AI methods map 1:1 to REST endpoints.
//
// All methods must honor context cancellation/timeouts. Transport-level
// failures are reported as ErrUnavailable; 401 maps to ErrUnauthorized
// and 404 to ErrNotFound.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (models.TokenResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)
	Profile(ctx context.Context) (models.Session, error)

	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocument(ctx context.Context, id string) (models.Document, error)
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	UpdateDocument(ctx context.Context, id string, doc models.Document) (models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, filename string, content io.Reader, analyze bool) (models.Document, error)

	ListClauses(ctx context.Context) ([]models.Clause, error)
	GetClause(ctx context.Context, id int) (models.Clause, error)
	CreateClause(ctx context.Context, clause models.Clause) (models.Clause, error)
	UpdateClause(ctx context.Context, id int, clause models.Clause) (models.Clause, error)
	DeleteClause(ctx context.Context, id int) error
	ClauseTypes(ctx context.Context) ([]string, error)
	ClauseTags(ctx context.Context) ([]string, error)

	CreateDraft(ctx context.Context, req models.DraftRequest) (models.Draft, error)
	GetDraft(ctx context.Context, id string) (models.Draft, error)
	UpdateDraft(ctx context.Context, id string, upd models.DraftUpdate) (models.Draft, error)
	SimulateDraft(ctx context.Context, id string, req models.SimulateRequest) (models.SimulateResponse, error)

	ExplainClause(ctx context.Context, req models.ExplainRequest) (models.ExplainResponse, error)
	SimulateClause(ctx context.Context, req models.SimulateRequest) (models.SimulateResponse, error)
	SuggestRedline(ctx context.Context, req models.RedlineRequest) (map[string]any, error)
	GenerateAlternatives(ctx context.Context, req models.AlternativesRequest) (map[string]any, error)
	AnalyzeRisk(ctx context.Context, req models.RiskAnalysisRequest) (map[string]any, error)

	ListWorkflows(ctx context.Context) ([]models.Workflow, error)
	GetWorkflow(ctx context.Context, id int) (models.Workflow, error)
	StartWorkflow(ctx context.Context, documentID string, data map[string]any) (models.WorkflowStartResult, error)
	ApproveWorkflow(ctx context.Context, id int, data map[string]any) error
	RejectWorkflow(ctx context.Context, id int, data map[string]any) error
}
