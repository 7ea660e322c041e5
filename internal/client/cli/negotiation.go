package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
	"github.com/clausecraft/clausecraft-cli/internal/client/views"
)

// OpenNegotiation starts (or restarts) a negotiation workspace for a
// document, seeded with the sample change set.
func (a *App) OpenNegotiation(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter document id to negotiate", os.Stdout)
	if err != nil {
		return err
	}
	a.negotiation = views.NewNegotiation(id, views.SampleChanges())
	printlnFn("Negotiation open for " + id)
	return a.ShowChanges(ctx)
}

// ShowChanges prints the change set and the derived progress line.
func (a *App) ShowChanges(ctx context.Context) error {
	n, err := a.openNegotiation()
	if err != nil {
		return err
	}
	for _, c := range n.Changes() {
		printlnFn(fmt.Sprintf("%-8s %-8s %-20s %s (%s)", c.ID, c.Status, c.Item, c.Description, c.ProposedBy))
	}
	p := n.Progress()
	printlnFn(fmt.Sprintf("Progress: %d accepted, %d rejected, %d pending of %d",
		p.Accepted, p.Rejected, p.Pending, p.Proposed))
	return nil
}

// ProposeChange collects a counter-proposal and appends it as pending.
func (a *App) ProposeChange(ctx context.Context) error {
	n, err := a.openNegotiation()
	if err != nil {
		return err
	}
	item, err := getSimpleText(a.reader, "Clause or term being changed", os.Stdout)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Describe the proposed change", os.Stdout)
	if err != nil {
		return err
	}
	section, err := getSimpleText(a.reader, "Section", os.Stdout)
	if err != nil {
		return err
	}

	s, _ := a.resolver.Session()
	c := n.Propose(models.NegotiationChange{
		Type:        "modification",
		Item:        item,
		Description: desc,
		Section:     section,
		ProposedBy:  s.Name,
	})
	printlnFn("Proposed " + c.ID)
	return nil
}

// AcceptChange marks a pending change accepted.
func (a *App) AcceptChange(ctx context.Context) error {
	return a.decideChange(ctx, "accept")
}

// RejectChange marks a pending change rejected.
func (a *App) RejectChange(ctx context.Context) error {
	return a.decideChange(ctx, "reject")
}

func (a *App) decideChange(ctx context.Context, verb string) error {
	n, err := a.openNegotiation()
	if err != nil {
		return err
	}
	id, err := getSimpleText(a.reader, "Enter change id to "+verb, os.Stdout)
	if err != nil {
		return err
	}
	if verb == "accept" {
		err = n.Accept(id)
	} else {
		err = n.Reject(id)
	}
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn(id + " " + verb + "ed")
	return nil
}

// ShowPlaybook prints the negotiation playbook hints.
func (a *App) ShowPlaybook(ctx context.Context) error {
	for _, line := range views.Playbook() {
		printlnFn("- " + line)
	}
	return nil
}

func (a *App) openNegotiation() (*views.Negotiation, error) {
	if a.negotiation == nil {
		return nil, fmt.Errorf("no negotiation open, use 'nego' first")
	}
	return a.negotiation, nil
}
