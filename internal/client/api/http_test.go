package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
)

func TestLogin_SendsFormEncodedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user@example.com", r.FormValue("username"))
		assert.Equal(t, "secret", r.FormValue("password"))

		_ = json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "tok-1", TokenType: "bearer"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	tok, err := c.Login(context.Background(), "user@example.com", []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok.AccessToken)
}

func TestLogin_401MapsToErrUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Login(context.Background(), "user@example.com", []byte("wrong"))
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Incorrect email or password")
}

func TestProfile_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.Session{ID: 7, Name: "Jo", Email: "jo@x.com", Role: "user"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, WithTokenSource(func(ctx context.Context) string { return "tok-1" }))
	s, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, s.ID)
}

func TestProfile_NoTokenMeansNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.Session{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, WithTokenSource(func(ctx context.Context) string { return "" }))
	_, err := c.Profile(context.Background())
	require.NoError(t, err)
}

func TestListDocuments_DecodesCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/documents", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":"1","filename":"Sample_NDA.pdf","file_type":"pdf",
			 "analysis":{"document_type":"Non-Disclosure Agreement","risk_level":"Low","summary":"ok"}}
		]`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	docs, err := c.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.NotNil(t, docs[0].Analysis)
	assert.Equal(t, models.RiskLow, docs[0].Analysis.RiskLevel)
}

func TestUploadDocument_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/documents/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "true", r.FormValue("analyze"))

		file, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "contract.pdf", hdr.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake pdf bytes", string(content))

		_ = json.NewEncoder(w).Encode(models.Document{ID: "42", Filename: hdr.Filename, FileType: "pdf"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	doc, err := c.UploadDocument(context.Background(), "contract.pdf", strings.NewReader("fake pdf bytes"), true)
	require.NoError(t, err)
	assert.Equal(t, "42", doc.ID)
}

func TestDo_TransportErrorMapsToErrUnavailable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1") // nothing listens here
	_, err := c.ListDocuments(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDo_404MapsToErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Document not found"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.GetDocument(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDo_OtherStatusBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Unsupported file type"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.UploadDocument(context.Background(), "x.exe", strings.NewReader("x"), true)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Unsupported file type", apiErr.Detail)
}

func TestWorkflowEndpointsUsePathsFromBackend(t *testing.T) {
	var gotPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	ctx := context.Background()
	_, _ = c.StartWorkflow(ctx, "12", map[string]any{"steps": []string{}})
	_ = c.ApproveWorkflow(ctx, 3, nil)
	_ = c.RejectWorkflow(ctx, 3, nil)

	assert.Equal(t, []string{
		"POST /12/workflow/start",
		"PUT /workflows/3/approve",
		"PUT /workflows/3/reject",
	}, gotPaths)
}
