package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergent-company/netgraph/internal/netlog"
)

func TestReplay_ComposeChainAccepts(t *testing.T) {
	batch, err := ReadBatch(strings.NewReader(`{
		"default_status": "todo",
		"accepted_status": "done",
		"commands": [
			{"op": "add_task", "task": "a"},
			{"op": "add_task", "task": "b"},
			{"op": "new_relation", "from": "a", "to": "b", "relation": "Compose"},
			{"op": "change_task_status", "task": "a", "status": "done"}
		]
	}`))
	require.NoError(t, err)

	net, err := Replay(batch, netlog.New("error"))
	require.NoError(t, err)

	summary := net.Summarize()
	assert.Equal(t, 2, summary.TaskCount)
	assert.Equal(t, 2, summary.AcceptedCount)
}

func TestReplay_StopsAtFirstFailingCommand(t *testing.T) {
	batch, err := ReadBatch(strings.NewReader(`{
		"commands": [
			{"op": "add_task", "task": "a"},
			{"op": "change_task_status", "task": "missing", "status": "default"}
		]
	}`))
	require.NoError(t, err)

	net, err := Replay(batch, netlog.New("error"))
	require.Error(t, err)
	require.NotNil(t, net)
	assert.Equal(t, 1, net.Summarize().TaskCount)
}

func TestReplay_UnknownRelationTypeFails(t *testing.T) {
	batch, err := ReadBatch(strings.NewReader(`{
		"commands": [
			{"op": "add_task", "task": "a"},
			{"op": "add_task", "task": "b"},
			{"op": "new_relation", "from": "a", "to": "b", "relation": "sideways"}
		]
	}`))
	require.NoError(t, err)

	_, err = Replay(batch, netlog.New("error"))
	require.Error(t, err)
}

func TestReplay_DefaultsFallBackWhenBatchOmitsNames(t *testing.T) {
	batch, err := ReadBatch(strings.NewReader(`{"commands": []}`))
	require.NoError(t, err)

	net, err := Replay(batch, netlog.New("error"))
	require.NoError(t, err)

	names := make([]string, 0, 2)
	for _, se := range net.Statuses() {
		names = append(names, se.Name)
	}
	assert.ElementsMatch(t, []string{"default", "accepted"}, names)
}

