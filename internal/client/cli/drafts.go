package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
)

// CreateDraft collects contract parameters and asks the backend to
// generate a draft.
func (a *App) CreateDraft(ctx context.Context) error {
	contractType, err := getSimpleText(a.reader, "Contract type (nda/service/employment)", os.Stdout)
	if err != nil {
		return err
	}
	partyA, err := getSimpleText(a.reader, "First party", os.Stdout)
	if err != nil {
		return err
	}
	partyB, err := getSimpleText(a.reader, "Second party", os.Stdout)
	if err != nil {
		return err
	}
	jurisdiction, err := getSimpleText(a.reader, "Jurisdiction", os.Stdout)
	if err != nil {
		return err
	}
	scope, err := getSimpleText(a.reader, "Scope (short)", os.Stdout)
	if err != nil {
		return err
	}

	draft, err := a.client.CreateDraft(ctx, models.DraftRequest{
		ContractType: contractType,
		Parties:      map[string]string{"party_a": partyA, "party_b": partyB},
		Jurisdiction: jurisdiction,
		ScopeShort:   scope,
	})
	if err != nil {
		printlnFn("Draft generation failed: " + err.Error())
		return nil
	}
	printlnFn("Draft " + draft.DraftID)
	if draft.Summary != "" {
		printlnFn(draft.Summary)
	}
	printlnFn(draft.Content)
	return nil
}

// EditDraft fetches a draft, shows its content and replaces it with the
// text the user enters.
func (a *App) EditDraft(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter draft id", os.Stdout)
	if err != nil {
		return err
	}
	draft, err := a.client.GetDraft(ctx, id)
	if err != nil {
		printlnFn("Could not fetch draft: " + err.Error())
		return nil
	}
	printlnFn(draft.Content)

	content, err := getSimpleText(a.reader, "New content (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}
	if _, err := a.client.UpdateDraft(ctx, id, models.DraftUpdate{Content: content}); err != nil {
		printlnFn("Could not update draft: " + err.Error())
		return nil
	}
	printlnFn("Draft " + id + " updated")
	return nil
}

// SimulateChange asks the backend to assess the impact of rewording a clause.
func (a *App) SimulateChange(ctx context.Context) error {
	original, err := getSimpleText(a.reader, "Original clause text", os.Stdout)
	if err != nil {
		return err
	}
	modified, err := getSimpleText(a.reader, "Modified clause text", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.SimulateClause(ctx, models.SimulateRequest{
		OriginalClause: original,
		ModifiedClause: modified,
	})
	if err != nil {
		printlnFn("Simulation failed: " + err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Risk assessment: %.2f", res.RiskAssessment))
	for _, r := range res.Recommendations {
		printlnFn("- " + r)
	}
	return nil
}

// ExplainClause asks the backend for a plain-language explanation of a clause.
func (a *App) ExplainClause(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Paste the clause text", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.ExplainClause(ctx, models.ExplainRequest{ClauseText: text})
	if err != nil {
		printlnFn("Explanation failed: " + err.Error())
		return nil
	}
	printlnFn(res.Explanation)
	if res.Confidence > 0 {
		printlnFn(fmt.Sprintf("Confidence: %.2f", res.Confidence))
	}
	return nil
}
