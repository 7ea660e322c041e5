package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
)

const defaultTimeout = 15 * time.Second

// HTTPClient is the concrete Client talking JSON over REST.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTokenSource installs the bearer-token provider. The source is
// consulted per request, so a token persisted after construction is
// picked up without rebuilding the client.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.token = ts }
}

// WithHTTPClient swaps the underlying *http.Client (tests, custom
// transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://localhost:8000/api". A trailing slash is trimmed.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Client = (*HTTPClient)(nil)

// do issues a request and decodes the JSON response into out (when out is
// non-nil). Transport errors map to ErrUnavailable, 401 to ErrUnauthorized,
// 404 to ErrNotFound; other non-2xx statuses become *Error carrying the
// backend's "detail" message when present.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != nil {
		if tok := c.token(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if payload.Detail != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, payload.Detail)
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		if payload.Detail != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, payload.Detail)
		}
		return ErrNotFound
	default:
		return &Error{StatusCode: resp.StatusCode, Detail: payload.Detail}
	}
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// ---- auth ----

// Login exchanges credentials for a bearer token. The backend speaks
// OAuth2 password flow, so the body is form-encoded username/password.
func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", string(password))

	var tok models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &tok)
	return tok, err
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	var s models.Session
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &s)
	return s, err
}

func (c *HTTPClient) Profile(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &s)
	return s, err
}

// ---- documents ----

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	err := c.doJSON(ctx, http.MethodGet, "/documents", nil, &docs)
	return docs, err
}

func (c *HTTPClient) GetDocument(ctx context.Context, id string) (models.Document, error) {
	var doc models.Document
	err := c.doJSON(ctx, http.MethodGet, "/documents/"+url.PathEscape(id), nil, &doc)
	return doc, err
}

func (c *HTTPClient) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	var created models.Document
	err := c.doJSON(ctx, http.MethodPost, "/documents", doc, &created)
	return created, err
}

func (c *HTTPClient) UpdateDocument(ctx context.Context, id string, doc models.Document) (models.Document, error) {
	var updated models.Document
	err := c.doJSON(ctx, http.MethodPut, "/documents/"+url.PathEscape(id), doc, &updated)
	return updated, err
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil, nil)
}

// UploadDocument streams the file as a multipart body with an "analyze"
// form field, matching the backend's upload endpoint.
func (c *HTTPClient) UploadDocument(ctx context.Context, filename string, content io.Reader, analyze bool) (models.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return models.Document{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return models.Document{}, fmt.Errorf("copy file content: %w", err)
	}
	if err := mw.WriteField("analyze", strconv.FormatBool(analyze)); err != nil {
		return models.Document{}, fmt.Errorf("write analyze field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return models.Document{}, fmt.Errorf("close multipart writer: %w", err)
	}

	var doc models.Document
	err = c.do(ctx, http.MethodPost, "/documents/upload", &buf, mw.FormDataContentType(), &doc)
	return doc, err
}

// ---- clauses ----

func (c *HTTPClient) ListClauses(ctx context.Context) ([]models.Clause, error) {
	var clauses []models.Clause
	err := c.doJSON(ctx, http.MethodGet, "/clauses", nil, &clauses)
	return clauses, err
}

func (c *HTTPClient) GetClause(ctx context.Context, id int) (models.Clause, error) {
	var clause models.Clause
	err := c.doJSON(ctx, http.MethodGet, "/clauses/"+strconv.Itoa(id), nil, &clause)
	return clause, err
}

func (c *HTTPClient) CreateClause(ctx context.Context, clause models.Clause) (models.Clause, error) {
	var created models.Clause
	err := c.doJSON(ctx, http.MethodPost, "/clauses", clause, &created)
	return created, err
}

func (c *HTTPClient) UpdateClause(ctx context.Context, id int, clause models.Clause) (models.Clause, error) {
	var updated models.Clause
	err := c.doJSON(ctx, http.MethodPut, "/clauses/"+strconv.Itoa(id), clause, &updated)
	return updated, err
}

func (c *HTTPClient) DeleteClause(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/clauses/"+strconv.Itoa(id), nil, nil)
}

func (c *HTTPClient) ClauseTypes(ctx context.Context) ([]string, error) {
	var types []string
	err := c.doJSON(ctx, http.MethodGet, "/clauses/types", nil, &types)
	return types, err
}

func (c *HTTPClient) ClauseTags(ctx context.Context) ([]string, error) {
	var tags []string
	err := c.doJSON(ctx, http.MethodGet, "/clauses/tags", nil, &tags)
	return tags, err
}

// ---- drafts ----

func (c *HTTPClient) CreateDraft(ctx context.Context, req models.DraftRequest) (models.Draft, error) {
	var draft models.Draft
	err := c.doJSON(ctx, http.MethodPost, "/drafts", req, &draft)
	return draft, err
}

func (c *HTTPClient) GetDraft(ctx context.Context, id string) (models.Draft, error) {
	var draft models.Draft
	err := c.doJSON(ctx, http.MethodGet, "/drafts/"+url.PathEscape(id), nil, &draft)
	return draft, err
}

func (c *HTTPClient) UpdateDraft(ctx context.Context, id string, upd models.DraftUpdate) (models.Draft, error) {
	var draft models.Draft
	err := c.doJSON(ctx, http.MethodPut, "/drafts/"+url.PathEscape(id), upd, &draft)
	return draft, err
}

func (c *HTTPClient) SimulateDraft(ctx context.Context, id string, req models.SimulateRequest) (models.SimulateResponse, error) {
	var resp models.SimulateResponse
	err := c.doJSON(ctx, http.MethodPost, "/drafts/"+url.PathEscape(id)+"/simulate", req, &resp)
	return resp, err
}

// ---- ai ----

func (c *HTTPClient) ExplainClause(ctx context.Context, req models.ExplainRequest) (models.ExplainResponse, error) {
	var resp models.ExplainResponse
	err := c.doJSON(ctx, http.MethodPost, "/ai/explain", req, &resp)
	return resp, err
}

func (c *HTTPClient) SimulateClause(ctx context.Context, req models.SimulateRequest) (models.SimulateResponse, error) {
	var resp models.SimulateResponse
	err := c.doJSON(ctx, http.MethodPost, "/ai/simulate", req, &resp)
	return resp, err
}

func (c *HTTPClient) SuggestRedline(ctx context.Context, req models.RedlineRequest) (map[string]any, error) {
	var resp map[string]any
	err := c.doJSON(ctx, http.MethodPost, "/ai/redline", req, &resp)
	return resp, err
}

func (c *HTTPClient) GenerateAlternatives(ctx context.Context, req models.AlternativesRequest) (map[string]any, error) {
	var resp map[string]any
	err := c.doJSON(ctx, http.MethodPost, "/ai/alternatives", req, &resp)
	return resp, err
}

func (c *HTTPClient) AnalyzeRisk(ctx context.Context, req models.RiskAnalysisRequest) (map[string]any, error) {
	var resp map[string]any
	err := c.doJSON(ctx, http.MethodPost, "/ai/risk-analysis", req, &resp)
	return resp, err
}

// ---- workflows ----

func (c *HTTPClient) ListWorkflows(ctx context.Context) ([]models.Workflow, error) {
	var wfs []models.Workflow
	err := c.doJSON(ctx, http.MethodGet, "/workflows", nil, &wfs)
	return wfs, err
}

func (c *HTTPClient) GetWorkflow(ctx context.Context, id int) (models.Workflow, error) {
	var wf models.Workflow
	err := c.doJSON(ctx, http.MethodGet, "/workflows/"+strconv.Itoa(id), nil, &wf)
	return wf, err
}

func (c *HTTPClient) StartWorkflow(ctx context.Context, documentID string, data map[string]any) (models.WorkflowStartResult, error) {
	var res models.WorkflowStartResult
	err := c.doJSON(ctx, http.MethodPost, "/"+url.PathEscape(documentID)+"/workflow/start", data, &res)
	return res, err
}

func (c *HTTPClient) ApproveWorkflow(ctx context.Context, id int, data map[string]any) error {
	return c.doJSON(ctx, http.MethodPut, "/workflows/"+strconv.Itoa(id)+"/approve", data, nil)
}

func (c *HTTPClient) RejectWorkflow(ctx context.Context, id int, data map[string]any) error {
	return c.doJSON(ctx, http.MethodPut, "/workflows/"+strconv.Itoa(id)+"/reject", data, nil)
}
