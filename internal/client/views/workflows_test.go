package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecraft/clausecraft-cli/internal/client/api"
	"github.com/clausecraft/clausecraft-cli/internal/client/models"
)

type fakeWorkflowsClient struct {
	api.Client

	listRet  []models.Workflow
	startRet models.WorkflowStartResult

	approveErr error

	listCalls int
	approved  int
	rejected  int
}

func (f *fakeWorkflowsClient) ListWorkflows(ctx context.Context) ([]models.Workflow, error) {
	f.listCalls++
	return f.listRet, nil
}

func (f *fakeWorkflowsClient) StartWorkflow(ctx context.Context, documentID string, data map[string]any) (models.WorkflowStartResult, error) {
	return f.startRet, nil
}

func (f *fakeWorkflowsClient) ApproveWorkflow(ctx context.Context, id int, data map[string]any) error {
	f.approved = id
	return f.approveErr
}

func (f *fakeWorkflowsClient) RejectWorkflow(ctx context.Context, id int, data map[string]any) error {
	f.rejected = id
	return nil
}

func TestWorkflows_EmptyFallback(t *testing.T) {
	fc := &fakeWorkflowsClient{}
	w := NewWorkflows(fc, demoOn, testLog())

	res := w.List.Load(context.Background())
	assert.Equal(t, SourceDemo, res.Source)
	assert.Empty(t, w.List.Items(), "workflows view ships no sample data")
}

func TestWorkflows_StartApproveReject(t *testing.T) {
	fc := &fakeWorkflowsClient{startRet: models.WorkflowStartResult{WorkflowID: 7, Status: "started"}}
	w := NewWorkflows(fc, demoOff, testLog())

	res, err := w.Start(context.Background(), "12", []string{"legal-review"})
	require.NoError(t, err)
	assert.Equal(t, 7, res.WorkflowID)

	require.NoError(t, w.Approve(context.Background(), 7))
	assert.Equal(t, 7, fc.approved)
	assert.Equal(t, 1, fc.listCalls, "approve re-fetches the list")

	require.NoError(t, w.Reject(context.Background(), 8))
	assert.Equal(t, 8, fc.rejected)
}

func TestWorkflows_ApproveFailureDoesNotRefetch(t *testing.T) {
	fc := &fakeWorkflowsClient{approveErr: api.ErrUnavailable}
	w := NewWorkflows(fc, demoOff, testLog())

	err := w.Approve(context.Background(), 1)
	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.Zero(t, fc.listCalls)
}
