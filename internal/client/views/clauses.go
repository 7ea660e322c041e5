package views

import (
	"context"

	"github.com/clausecraft/clausecraft-cli/internal/client/api"
	"github.com/clausecraft/clausecraft-cli/internal/client/models"
	"github.com/clausecraft/clausecraft-cli/internal/logging"
)

// Filter names for the clause library view.
const (
	FilterStatus = "status"
	FilterTag    = "tag"
)

// SampleClauses is the clause library's fallback collection.
func SampleClauses() []models.Clause {
	return []models.Clause{
		{ID: 1, Name: "Standard Confidentiality", Tags: []string{"Confidentiality", "NDA"}, LastUpdated: "2024-01-15", Status: models.ClauseApproved},
		{ID: 2, Name: "Payment Terms - Net 30", Tags: []string{"Payment", "Terms"}, LastUpdated: "2024-01-14", Status: models.ClauseApproved},
		{ID: 3, Name: "Termination Clause", Tags: []string{"Termination", "Contract"}, LastUpdated: "2024-01-13", Status: models.ClauseDraft},
	}
}

// Clauses is the clause library view.
type Clauses struct {
	List   *List[models.Clause]
	client api.Client
	demoFn func() bool
	log    logging.Logger
}

// NewClauses wires the clause library view. The status filter takes
// "all", "approved" or "draft"; the tag filter takes "All" or an exact
// tag.
func NewClauses(client api.Client, demoFn func() bool, log logging.Logger) *Clauses {
	c := &Clauses{client: client, demoFn: demoFn, log: log}
	c.List = NewList("clauses",
		client.ListClauses,
		SampleClauses(),
		func(cl models.Clause) string { return cl.Name },
		demoFn,
		log,
	)
	c.List.RegisterFilter(FilterStatus, func(cl models.Clause, value string) bool {
		return cl.MatchesStatus(value)
	})
	c.List.RegisterFilter(FilterTag, func(cl models.Clause, value string) bool {
		if value == "" || value == "All" {
			return true
		}
		return cl.HasTag(value)
	})
	return c
}

// TagFilters derives the tag filter choices from the loaded collection,
// preserving first-seen order, with "All" in front.
func (c *Clauses) TagFilters() []string {
	out := []string{"All"}
	seen := make(map[string]struct{})
	for _, cl := range c.List.Items() {
		for _, tag := range cl.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// Tags returns the tag filter choices. In a live session the backend's
// tag list is merged after the derived ones; a backend failure degrades
// to the derived list alone. Demo sessions never touch the network.
func (c *Clauses) Tags(ctx context.Context) []string {
	out := c.TagFilters()
	if c.demoFn != nil && c.demoFn() {
		return out
	}

	remote, err := c.client.ClauseTags(ctx)
	if err != nil {
		c.log.Warn(ctx, "fetching clause tags", "cause", err)
		return out
	}

	seen := make(map[string]struct{}, len(out))
	for _, tag := range out {
		seen[tag] = struct{}{}
	}
	for _, tag := range remote {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
