package netio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergent-company/netgraph/internal/netcore"
	"github.com/emergent-company/netgraph/internal/netio"
)

func buildSampleNet(t *testing.T) *netcore.Net {
	t.Helper()
	n := netcore.NewNet("default", "accepted")
	t1, t2 := netcore.NewID[netcore.TaskKind](), netcore.NewID[netcore.TaskKind]()
	require.NoError(t, n.AddTask(t1))
	require.NoError(t, n.AddTask(t2))
	require.NoError(t, n.NewRelation(t1, t2, netcore.Compose))
	require.NoError(t, n.ChangeTaskStatus(t1, n.AcceptedID()))
	return n
}

func TestSnapshotRoundTrip(t *testing.T) {
	n := buildSampleNet(t)

	var buf bytes.Buffer
	require.NoError(t, netio.WriteJSON(&buf, n))

	snap, err := netio.ReadJSON(&buf)
	require.NoError(t, err)

	restored, err := netio.Restore(snap)
	require.NoError(t, err)

	assert.ElementsMatch(t, n.Tasks(), restored.Tasks())
	for _, tid := range n.Tasks() {
		want, _ := n.StatusOf(tid)
		got, ok := restored.StatusOf(tid)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.ElementsMatch(t, n.Edges(), restored.Edges())
}

func TestWriteDot_ContainsNodesAndEdges(t *testing.T) {
	n := buildSampleNet(t)
	dot := netio.WriteDot(n)

	assert.True(t, strings.HasPrefix(dot, "digraph net {"))
	assert.Contains(t, dot, "->")
	assert.Contains(t, dot, "Compose")
}
