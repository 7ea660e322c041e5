package views

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
)

func TestNegotiation_ProposeAppendsPendingChange(t *testing.T) {
	n := NewNegotiation("doc-1", nil)

	c := n.Propose(models.NegotiationChange{
		Type: "modification", Item: "Payment schedule",
		Description: "Net 45 instead of Net 30", ProposedBy: "Client", Section: "2. Payment Terms",
	})

	assert.Equal(t, models.ChangePending, c.Status)
	_, err := uuid.Parse(c.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Timestamp)

	changes := n.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, c.ID, changes[0].ID)
}

func TestNegotiation_AcceptAndRejectAreTerminal(t *testing.T) {
	n := NewNegotiation("doc-1", SampleChanges())

	require.NoError(t, n.Accept("chg-1"))
	require.NoError(t, n.Reject("chg-2"))

	// Re-deciding settled changes fails and leaves status unchanged.
	require.Error(t, n.Accept("chg-1"))
	require.Error(t, n.Reject("chg-1"))
	require.Error(t, n.Accept("chg-3"), "sample chg-3 is already accepted")

	byID := map[string]models.ChangeStatus{}
	for _, c := range n.Changes() {
		byID[c.ID] = c.Status
	}
	assert.Equal(t, models.ChangeAccepted, byID["chg-1"])
	assert.Equal(t, models.ChangeRejected, byID["chg-2"])
	assert.Equal(t, models.ChangeAccepted, byID["chg-3"])
}

func TestNegotiation_UnknownChange(t *testing.T) {
	n := NewNegotiation("doc-1", nil)
	assert.Error(t, n.Accept("nope"))
}

func TestNegotiation_ProgressIsDerived(t *testing.T) {
	n := NewNegotiation("doc-1", SampleChanges())
	assert.Equal(t, models.NegotiationProgress{Proposed: 3, Accepted: 1, Pending: 2}, n.Progress())

	require.NoError(t, n.Accept("chg-1"))
	assert.Equal(t, models.NegotiationProgress{Proposed: 3, Accepted: 2, Pending: 1}, n.Progress())
}

func TestNegotiation_ChangesReturnsCopy(t *testing.T) {
	n := NewNegotiation("doc-1", SampleChanges())
	got := n.Changes()
	got[0].Status = models.ChangeRejected

	assert.Equal(t, models.ChangePending, n.Changes()[0].Status)
}
