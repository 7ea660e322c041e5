package views

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
)

// SampleChanges is the negotiation workspace's fallback change list.
func SampleChanges() []models.NegotiationChange {
	return []models.NegotiationChange{
		{
			ID: "chg-1", Type: "modification", Item: "Payment schedule",
			Description: "Change upfront payment from 50% to 30% with the remainder split across milestones.",
			Status:      models.ChangePending, ProposedBy: "Client", Timestamp: "2024-01-15T11:05:00Z", Section: "2. Payment Terms",
		},
		{
			ID: "chg-2", Type: "addition", Item: "Liability cap",
			Description: "Add a liability cap equal to the total fees paid under the agreement.",
			Status:      models.ChangePending, ProposedBy: "Service Provider", Timestamp: "2024-01-15T11:40:00Z", Section: "5. Liability",
		},
		{
			ID: "chg-3", Type: "modification", Item: "Scope of services",
			Description: "Clarify that system integration covers only the environments listed in Exhibit A.",
			Status:      models.ChangeAccepted, ProposedBy: "Client", Timestamp: "2024-01-14T16:20:00Z", Section: "1. Scope of Services",
		},
	}
}

// Playbook is the fixed negotiation guidance shown alongside a document
// under negotiation.
func Playbook() []string {
	return []string{
		"Aim for milestone-based payments over large upfront fees.",
		"Cap liability at fees paid; avoid uncapped indemnities.",
		"Keep non-compete clauses narrow in scope and duration.",
		"Require mutual confidentiality obligations.",
	}
}

// Negotiation is the negotiation workspace: an append-only change list
// with terminal accept/reject transitions and derived progress counters.
type Negotiation struct {
	documentID string

	mu      sync.Mutex
	changes []models.NegotiationChange
}

// NewNegotiation opens a workspace over the given document. The initial
// change list is the caller's choice; pass SampleChanges() for the demo
// workspace or nil to start empty.
func NewNegotiation(documentID string, initial []models.NegotiationChange) *Negotiation {
	return &Negotiation{
		documentID: documentID,
		changes:    append([]models.NegotiationChange(nil), initial...),
	}
}

// DocumentID returns the negotiated document's id.
func (n *Negotiation) DocumentID() string { return n.documentID }

// Changes returns a copy of the change list in proposal order.
func (n *Negotiation) Changes() []models.NegotiationChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.NegotiationChange, len(n.changes))
	copy(out, n.changes)
	return out
}

// Propose appends a new pending change and returns it with its generated
// id and timestamp filled in.
func (n *Negotiation) Propose(c models.NegotiationChange) models.NegotiationChange {
	c.ID = uuid.NewString()
	c.Status = models.ChangePending
	c.Timestamp = time.Now().UTC().Format(time.RFC3339)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, c)
	return c
}

// Accept transitions a pending change to accepted. Accepted and rejected
// are terminal: re-deciding a settled change is an error and leaves it
// untouched.
func (n *Negotiation) Accept(id string) error {
	return n.decide(id, models.ChangeAccepted)
}

// Reject transitions a pending change to rejected.
func (n *Negotiation) Reject(id string) error {
	return n.decide(id, models.ChangeRejected)
}

func (n *Negotiation) decide(id string, status models.ChangeStatus) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.changes {
		if n.changes[i].ID != id {
			continue
		}
		if n.changes[i].Status != models.ChangePending {
			return fmt.Errorf("change %s already %s", id, n.changes[i].Status)
		}
		n.changes[i].Status = status
		return nil
	}
	return fmt.Errorf("change %s: not found", id)
}

// Progress derives the workspace's progress counters from the change
// list.
func (n *Negotiation) Progress() models.NegotiationProgress {
	n.mu.Lock()
	defer n.mu.Unlock()
	return models.Progress(n.changes)
}
