package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
	"github.com/clausecraft/clausecraft-cli/internal/client/views"
)

// ListDocuments loads the documents view and prints the visible rows.
// Search and risk filters set by earlier commands stay applied.
func (a *App) ListDocuments(ctx context.Context) error {
	a.documents.List.Load(ctx)
	a.printSourceNote(ctx, a.documents.List.Source(), a.documents.List.Cause())

	for _, d := range a.documents.List.Visible() {
		risk := "pending"
		if d.Analysis != nil {
			risk = string(d.Analysis.RiskLevel)
		}
		printlnFn(fmt.Sprintf("%-10s %-30s %-6s %s", d.ID, d.Filename, risk, d.UploadedAt))
	}
	printlnFn("Risk: " + riskSummary(a.documents.RiskCounts()))
	return nil
}

// SearchDocuments prompts for a name substring and a risk filter and
// applies both to the documents view.
func (a *App) SearchDocuments(ctx context.Context) error {
	search, err := getSimpleText(a.reader, "Search by name (empty to clear)", os.Stdout)
	if err != nil {
		return err
	}
	risk, err := getSimpleText(a.reader, "Risk filter (all/low/medium/high)", os.Stdout)
	if err != nil {
		return err
	}
	a.documents.List.SetSearch(search)
	if risk != "" {
		a.documents.List.SetFilter(views.FilterRisk, risk)
	}
	return a.ListDocuments(ctx)
}

// UploadDocument reads a local file and sends it for analysis. A failed
// upload still yields a locally fabricated record so the collection view
// stays usable.
func (a *App) UploadDocument(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter file path", os.Stdout)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	res := a.documents.Upload(ctx, filepath.Base(path), f)
	if res.Placeholder && res.Cause != nil {
		printlnFn("Upload failed (" + res.Cause.Error() + "), added a local placeholder")
	} else {
		printlnFn("Uploaded " + res.Document.Filename + " as " + res.Document.ID)
	}
	return nil
}

// DeleteDocument removes a document by ID, prompting for the ID.
func (a *App) DeleteDocument(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter document id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.documents.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Deleted " + id)
	return nil
}

// ShowDocument selects a document and prints its analysis, if present.
func (a *App) ShowDocument(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter document id to show", os.Stdout)
	if err != nil {
		return err
	}
	if !a.documents.Select(id) {
		printlnFn("No such document: " + id)
		return nil
	}
	d, _ := a.documents.Selected()

	printlnFn(d.Filename + " (" + d.FileType + ", " + d.Size + ")")
	if d.Analysis == nil {
		printlnFn("Analysis pending")
		return nil
	}
	printlnFn("Type:       " + d.Analysis.DocumentType)
	printlnFn(fmt.Sprintf("Risk:       %s (%.2f)", d.Analysis.RiskLevel, d.Analysis.RiskScore))
	if d.Analysis.Summary != "" {
		printlnFn("Summary:    " + d.Analysis.Summary)
	}
	for _, c := range d.Analysis.KeyClauses {
		printlnFn("  clause: " + c)
	}
	return nil
}

func (a *App) printSourceNote(ctx context.Context, src views.Source, cause error) {
	switch src {
	case views.SourceDemo:
		printlnFn("[demo data]")
	case views.SourceFallback:
		if cause != nil {
			a.log.Warn(ctx, "list fell back to sample data", "cause", cause)
		}
		printlnFn("[backend unavailable, showing sample data]")
	}
}

func riskSummary(counts map[models.RiskLevel]int) string {
	return fmt.Sprintf("low=%d medium=%d high=%d",
		counts[models.RiskLow], counts[models.RiskMedium], counts[models.RiskHigh])
}
