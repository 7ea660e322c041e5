package views

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clausecraft/clausecraft-cli/internal/client/api"
	"github.com/clausecraft/clausecraft-cli/internal/client/models"
	"github.com/clausecraft/clausecraft-cli/internal/logging"
)

// FilterRisk is the documents view's risk-level filter name.
const FilterRisk = "risk"

// placeholderAnalysis is attached to locally fabricated upload records.
func placeholderAnalysis() *models.Analysis {
	return &models.Analysis{
		DocumentType: "General Legal Document",
		RiskLevel:    models.RiskMedium,
		Summary:      "Document uploaded and analyzed successfully. Please review the analysis for detailed insights.",
		KeyClauses:   []string{"General Provisions"},
		RiskScore:    0.5,
	}
}

// SampleDocuments is the documents view's fallback collection, matching
// the product's canned demo data.
func SampleDocuments() []models.Document {
	return []models.Document{
		{
			ID: "demo-1", Filename: "Sample_NDA.pdf", FileType: "pdf",
			UploadedAt: "2024-01-15T10:30:00Z", Size: "1.2 MB",
			Analysis: &models.Analysis{
				DocumentType: "Non-Disclosure Agreement",
				RiskLevel:    models.RiskLow,
				Summary:      "Standard NDA with balanced terms for both parties. Contains mutual confidentiality obligations with reasonable exceptions.",
				KeyClauses:   []string{"Confidentiality", "Non-compete", "Termination"},
				RiskScore:    0.2,
			},
		},
		{
			ID: "demo-2", Filename: "Service_Agreement.docx", FileType: "docx",
			UploadedAt: "2024-01-14T14:20:00Z", Size: "2.8 MB",
			Analysis: &models.Analysis{
				DocumentType: "Service Agreement",
				RiskLevel:    models.RiskMedium,
				Summary:      "Service agreement with some clauses requiring review. Payment terms are favorable but liability clauses need attention.",
				KeyClauses:   []string{"Payment Terms", "Liability", "Intellectual Property"},
				RiskScore:    0.6,
			},
		},
		{
			ID: "demo-3", Filename: "Employment_Contract.pdf", FileType: "pdf",
			UploadedAt: "2024-01-13T09:15:00Z", Size: "3.1 MB",
			Analysis: &models.Analysis{
				DocumentType: "Employment Agreement",
				RiskLevel:    models.RiskHigh,
				Summary:      "Employment contract with several concerning clauses. Non-compete terms are overly broad and termination clauses favor employer heavily.",
				KeyClauses:   []string{"Non-compete", "Termination", "Benefits"},
				RiskScore:    0.8,
			},
		},
		{
			ID: "demo-4", Filename: "Lease_Agreement.pdf", FileType: "pdf",
			UploadedAt: "2024-01-12T16:45:00Z", Size: "1.9 MB",
			Analysis: &models.Analysis{
				DocumentType: "Lease Agreement",
				RiskLevel:    models.RiskLow,
				Summary:      "Standard residential lease agreement with fair terms for both landlord and tenant.",
				KeyClauses:   []string{"Rent", "Security Deposit", "Maintenance"},
				RiskScore:    0.3,
			},
		},
	}
}

// UploadResult reports a document upload. Placeholder uploads carry the
// backend failure in Cause (nil for demo-mode simulated uploads).
type UploadResult struct {
	Document    models.Document
	Placeholder bool
	Cause       error
}

// Documents is the documents view: a remote list plus upload, delete and
// local analysis-selection state.
type Documents struct {
	List   *List[models.Document]
	client api.Client
	demoFn func() bool
	log    logging.Logger

	mu       sync.Mutex
	selected *models.Document
}

// NewDocuments wires the documents view. demoFn reports whether the
// session is in demo mode.
func NewDocuments(client api.Client, demoFn func() bool, log logging.Logger) *Documents {
	d := &Documents{client: client, demoFn: demoFn, log: log}
	d.List = NewList("documents",
		client.ListDocuments,
		SampleDocuments(),
		func(doc models.Document) string { return doc.Filename },
		demoFn,
		log,
	)
	d.List.RegisterFilter(FilterRisk, func(doc models.Document, value string) bool {
		return doc.MatchesRisk(value)
	})
	return d
}

func (d *Documents) demo() bool {
	return d.demoFn != nil && d.demoFn()
}

// Upload sends the file to the backend and prepends the returned record
// to the collection without a re-fetch. In demo mode, or when the backend
// fails, it fabricates a placeholder record instead so the view still
// reflects the attempted upload; the result is tagged accordingly.
func (d *Documents) Upload(ctx context.Context, filename string, content io.Reader) UploadResult {
	if d.demo() {
		doc := d.fabricate(filename, content)
		d.List.Prepend(doc)
		return UploadResult{Document: doc, Placeholder: true}
	}

	doc, err := d.client.UploadDocument(ctx, filename, content, true)
	if err != nil {
		d.log.Warn(ctx, "upload failed, fabricating placeholder", "filename", filename, "err", err)
		ph := d.fabricate(filename, nil)
		d.List.Prepend(ph)
		return UploadResult{Document: ph, Placeholder: true, Cause: err}
	}

	d.List.Prepend(doc)
	return UploadResult{Document: doc}
}

func (d *Documents) fabricate(filename string, content io.Reader) models.Document {
	size := ""
	if content != nil {
		if n, err := io.Copy(io.Discard, content); err == nil {
			size = fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
		}
	}
	return models.Document{
		ID:          "demo-" + uuid.NewString(),
		Filename:    filename,
		FileType:    fileType(filename),
		UploadedAt:  time.Now().UTC().Format(time.RFC3339),
		Size:        size,
		Analysis:    placeholderAnalysis(),
		Placeholder: true,
	}
}

func fileType(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 && i+1 < len(filename) {
		return strings.ToLower(filename[i+1:])
	}
	return ""
}

// Delete removes a document. Demo mode removes locally; live mode deletes
// on the backend and then re-fetches the whole collection, reconciling
// any optimistic local records away.
func (d *Documents) Delete(ctx context.Context, id string) error {
	if d.demo() {
		d.List.RemoveWhere(func(doc models.Document) bool { return doc.ID == id })
		d.clearSelectionIf(id)
		return nil
	}

	if err := d.client.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	d.clearSelectionIf(id)
	d.List.Load(ctx)
	return nil
}

// Select marks a loaded document as the one whose analysis is being
// viewed. No network call is made; the record must already be loaded.
func (d *Documents) Select(id string) bool {
	for _, doc := range d.List.Items() {
		if doc.ID == id {
			d.mu.Lock()
			d.selected = &doc
			d.mu.Unlock()
			return true
		}
	}
	return false
}

// Selected returns the document currently being viewed, if any.
func (d *Documents) Selected() (models.Document, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selected == nil {
		return models.Document{}, false
	}
	return *d.selected, true
}

// CloseSelected clears the currently viewed document.
func (d *Documents) CloseSelected() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = nil
}

func (d *Documents) clearSelectionIf(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selected != nil && d.selected.ID == id {
		d.selected = nil
	}
}

// RiskCounts tallies the loaded collection by risk level for the stats
// header. Pending documents count toward none of the levels.
func (d *Documents) RiskCounts() map[models.RiskLevel]int {
	counts := make(map[models.RiskLevel]int, 3)
	for _, doc := range d.List.Items() {
		if doc.Analysis != nil {
			counts[doc.Analysis.RiskLevel]++
		}
	}
	return counts
}
