package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecraft/clausecraft-cli/internal/client/api"
	"github.com/clausecraft/clausecraft-cli/internal/client/models"
)

type fakeClausesClient struct {
	api.Client

	listRet []models.Clause
	listErr error

	tagsRet   []string
	tagsErr   error
	tagsCalls int
}

func (f *fakeClausesClient) ListClauses(ctx context.Context) ([]models.Clause, error) {
	return f.listRet, f.listErr
}

func (f *fakeClausesClient) ClauseTags(ctx context.Context) ([]string, error) {
	f.tagsCalls++
	return f.tagsRet, f.tagsErr
}

func loadedClauses(t *testing.T, fc *fakeClausesClient) *Clauses {
	t.Helper()
	c := NewClauses(fc, demoOff, testLog())
	c.List.Load(context.Background())
	return c
}

func TestClauses_FallbackSampleSet(t *testing.T) {
	c := loadedClauses(t, &fakeClausesClient{listErr: api.ErrUnavailable})

	items := c.List.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Standard Confidentiality", items[0].Name)
	assert.Equal(t, models.ClauseDraft, items[2].Status)
}

func TestClauses_StatusTabFilter(t *testing.T) {
	c := loadedClauses(t, &fakeClausesClient{listErr: api.ErrUnavailable})

	c.List.SetFilter(FilterStatus, "draft")
	got := c.List.Visible()
	require.Len(t, got, 1)
	assert.Equal(t, "Termination Clause", got[0].Name)

	c.List.SetFilter(FilterStatus, "approved")
	assert.Len(t, c.List.Visible(), 2)

	c.List.SetFilter(FilterStatus, "all")
	assert.Len(t, c.List.Visible(), 3)
}

func TestClauses_TagFilterIsMembershipTest(t *testing.T) {
	c := loadedClauses(t, &fakeClausesClient{listErr: api.ErrUnavailable})

	c.List.SetFilter(FilterTag, "NDA")
	got := c.List.Visible()
	require.Len(t, got, 1)
	assert.Equal(t, "Standard Confidentiality", got[0].Name)

	c.List.SetFilter(FilterTag, "All")
	assert.Len(t, c.List.Visible(), 3)
}

func TestClauses_CombinedSearchTabAndTag(t *testing.T) {
	c := loadedClauses(t, &fakeClausesClient{listErr: api.ErrUnavailable})

	c.List.SetSearch("terms")
	c.List.SetFilter(FilterStatus, "approved")
	c.List.SetFilter(FilterTag, "Payment")

	got := c.List.Visible()
	require.Len(t, got, 1)
	assert.Equal(t, "Payment Terms - Net 30", got[0].Name)
}

func TestClauses_TagFiltersDerivedInFirstSeenOrder(t *testing.T) {
	c := loadedClauses(t, &fakeClausesClient{listErr: api.ErrUnavailable})

	assert.Equal(t,
		[]string{"All", "Confidentiality", "NDA", "Payment", "Terms", "Termination", "Contract"},
		c.TagFilters())
}

func TestClauses_TagsMergesBackendList(t *testing.T) {
	fc := &fakeClausesClient{
		listRet: []models.Clause{
			{ID: 1, Name: "Indemnity", Tags: []string{"Liability"}, Status: models.ClauseApproved},
		},
		tagsRet: []string{"Liability", "Jurisdiction"},
	}
	c := loadedClauses(t, fc)

	assert.Equal(t, []string{"All", "Liability", "Jurisdiction"}, c.Tags(context.Background()))
	assert.Equal(t, 1, fc.tagsCalls)
}

func TestClauses_TagsBackendFailureDegradesToDerived(t *testing.T) {
	fc := &fakeClausesClient{
		listRet: []models.Clause{
			{ID: 1, Name: "Indemnity", Tags: []string{"Liability"}, Status: models.ClauseApproved},
		},
		tagsErr: api.ErrUnavailable,
	}
	c := loadedClauses(t, fc)

	assert.Equal(t, []string{"All", "Liability"}, c.Tags(context.Background()))
}

func TestClauses_TagsDemoModeNeverCallsBackend(t *testing.T) {
	fc := &fakeClausesClient{tagsRet: []string{"Jurisdiction"}}
	c := NewClauses(fc, demoOn, testLog())
	c.List.Load(context.Background())

	tags := c.Tags(context.Background())
	assert.Contains(t, tags, "NDA")
	assert.NotContains(t, tags, "Jurisdiction")
	assert.Equal(t, 0, fc.tagsCalls)
}
