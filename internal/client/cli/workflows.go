package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ListWorkflows loads the approval workflows and prints the visible rows.
func (a *App) ListWorkflows(ctx context.Context) error {
	a.workflows.List.Load(ctx)
	a.printSourceNote(ctx, a.workflows.List.Source(), a.workflows.List.Cause())

	items := a.workflows.List.Visible()
	if len(items) == 0 {
		printlnFn("No workflows")
		return nil
	}
	for _, w := range items {
		printlnFn(fmt.Sprintf("%-4d doc=%-6d %-12s %s", w.ID, w.DocumentID, w.Status, w.CreatedAt))
	}
	return nil
}

// StartWorkflow kicks off an approval workflow for a document.
func (a *App) StartWorkflow(ctx context.Context) error {
	docID, err := getSimpleText(a.reader, "Enter document id", os.Stdout)
	if err != nil {
		return err
	}
	steps, err := getSimpleText(a.reader, "Approval steps, comma-separated (e.g. legal,finance)", os.Stdout)
	if err != nil {
		return err
	}

	var stepList []string
	for _, s := range strings.Split(steps, ",") {
		if s = strings.TrimSpace(s); s != "" {
			stepList = append(stepList, s)
		}
	}

	res, err := a.workflows.Start(ctx, docID, stepList)
	if err != nil {
		printlnFn("Could not start workflow: " + err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Workflow %d started (%s)", res.WorkflowID, res.Status))
	return nil
}

// ApproveWorkflow approves a workflow step by workflow ID.
func (a *App) ApproveWorkflow(ctx context.Context) error {
	return a.decideWorkflow(ctx, "approve")
}

// RejectWorkflow rejects a workflow step by workflow ID.
func (a *App) RejectWorkflow(ctx context.Context) error {
	return a.decideWorkflow(ctx, "reject")
}

func (a *App) decideWorkflow(ctx context.Context, verb string) error {
	raw, err := getSimpleText(a.reader, "Enter workflow id to "+verb, os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		printlnFn("Workflow id must be a number")
		return nil
	}

	if verb == "approve" {
		err = a.workflows.Approve(ctx, id)
	} else {
		err = a.workflows.Reject(ctx, id)
	}
	if err != nil {
		printlnFn("Could not " + verb + " workflow: " + err.Error())
		return nil
	}
	past := "approved"
	if verb == "reject" {
		past = "rejected"
	}
	printlnFn(fmt.Sprintf("Workflow %d %s", id, past))
	return nil
}
