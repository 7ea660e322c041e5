package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clausecraft/clausecraft-cli/internal/client/views"
)

// ListClauses loads the clause library and prints the visible rows.
func (a *App) ListClauses(ctx context.Context) error {
	a.clauses.List.Load(ctx)
	a.printSourceNote(ctx, a.clauses.List.Source(), a.clauses.List.Cause())

	for _, c := range a.clauses.List.Visible() {
		printlnFn(fmt.Sprintf("%-4d %-35s %-9s [%s]", c.ID, c.Name, c.Status, strings.Join(c.Tags, ", ")))
	}
	return nil
}

// FilterClauses prompts for search, status and tag filters and applies
// them to the clause library view.
func (a *App) FilterClauses(ctx context.Context) error {
	search, err := getSimpleText(a.reader, "Search by name (empty to clear)", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status filter (all/approved/draft)", os.Stdout)
	if err != nil {
		return err
	}
	tag, err := getSimpleText(a.reader, "Tag filter (All or an exact tag)", os.Stdout)
	if err != nil {
		return err
	}
	a.clauses.List.SetSearch(search)
	if status != "" {
		a.clauses.List.SetFilter(views.FilterStatus, status)
	}
	if tag != "" {
		a.clauses.List.SetFilter(views.FilterTag, tag)
	}
	return a.ListClauses(ctx)
}

// ClauseTags prints the tag filter options: "All" first, then the tags
// derived from the loaded collection, then any extra tags the backend
// knows about.
func (a *App) ClauseTags(ctx context.Context) error {
	if a.clauses.List.State() == views.StateIdle {
		a.clauses.List.Load(ctx)
	}
	printlnFn("Tags: " + strings.Join(a.clauses.Tags(ctx), ", "))
	return nil
}
