package views

import (
	"context"
	"fmt"
	"strconv"

	"github.com/clausecraft/clausecraft-cli/internal/client/api"
	"github.com/clausecraft/clausecraft-cli/internal/client/models"
	"github.com/clausecraft/clausecraft-cli/internal/logging"
)

// Workflows is the approval-workflows view. It ships no sample data: an
// empty fallback collection is a legal per-view configuration.
type Workflows struct {
	List   *List[models.Workflow]
	client api.Client
}

func NewWorkflows(client api.Client, demoFn func() bool, log logging.Logger) *Workflows {
	w := &Workflows{client: client}
	w.List = NewList("workflows",
		client.ListWorkflows,
		nil,
		func(wf models.Workflow) string { return strconv.Itoa(wf.ID) + " " + wf.Status },
		demoFn,
		log,
	)
	return w
}

// Start kicks off an approval workflow for a document.
func (w *Workflows) Start(ctx context.Context, documentID string, steps []string) (models.WorkflowStartResult, error) {
	data := map[string]any{"steps": steps}
	res, err := w.client.StartWorkflow(ctx, documentID, data)
	if err != nil {
		return models.WorkflowStartResult{}, fmt.Errorf("start workflow for document %s: %w", documentID, err)
	}
	return res, nil
}

// Approve approves the workflow's current step and re-fetches the list.
func (w *Workflows) Approve(ctx context.Context, id int) error {
	if err := w.client.ApproveWorkflow(ctx, id, nil); err != nil {
		return fmt.Errorf("approve workflow %d: %w", id, err)
	}
	w.List.Load(ctx)
	return nil
}

// Reject rejects the workflow's current step and re-fetches the list.
func (w *Workflows) Reject(ctx context.Context, id int) error {
	if err := w.client.RejectWorkflow(ctx, id, nil); err != nil {
		return fmt.Errorf("reject workflow %d: %w", id, err)
	}
	w.List.Load(ctx)
	return nil
}
