package models

// ChangeStatus is the review state of a proposed negotiation change.
// Transitions pending→accepted and pending→rejected are terminal.
type ChangeStatus string

const (
	ChangePending  ChangeStatus = "pending"
	ChangeAccepted ChangeStatus = "accepted"
	ChangeRejected ChangeStatus = "rejected"
)

// NegotiationChange is an append-only record of a proposed edit to a
// document under negotiation.
type NegotiationChange struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Item        string       `json:"item"`
	Description string       `json:"description"`
	Status      ChangeStatus `json:"status"`
	ProposedBy  string       `json:"proposed_by"`
	Timestamp   string       `json:"timestamp"`
	Section     string       `json:"section"`
}

// NegotiationProgress aggregates change counts for the workspace sidebar.
// It is always derived from the change list, never stored.
type NegotiationProgress struct {
	Proposed int
	Accepted int
	Rejected int
	Pending  int
}

// Progress tallies the given changes.
func Progress(changes []NegotiationChange) NegotiationProgress {
	p := NegotiationProgress{Proposed: len(changes)}
	for _, c := range changes {
		switch c.Status {
		case ChangeAccepted:
			p.Accepted++
		case ChangeRejected:
			p.Rejected++
		default:
			p.Pending++
		}
	}
	return p
}
