package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/emergent-company/netgraph/internal/netcore"
)

// Batch is the replayable script format netgraphctl consumes: a set of
// named statuses to bootstrap the net with, and a sequence of commands
// naming tasks and statuses by caller-chosen strings rather than the
// opaque ids netcore itself mints. Batch is the CLI's problem, not
// netcore's — the Net aggregate never deals in names.
type Batch struct {
	DefaultStatus  string    `json:"default_status"`
	AcceptedStatus string    `json:"accepted_status"`
	Statuses       []string  `json:"statuses"`
	Commands       []Command `json:"commands"`
}

// Command is one step of a batch replay. Op selects which fields are
// read; unused fields for a given op are ignored.
type Command struct {
	Op       string `json:"op"`
	Task     string `json:"task,omitempty"`
	Status   string `json:"status,omitempty"`
	NewName  string `json:"new_name,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Relation string `json:"relation,omitempty"`
}

// ReadBatch decodes a Batch from r.
func ReadBatch(r io.Reader) (Batch, error) {
	var b Batch
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Batch{}, fmt.Errorf("decoding batch: %w", err)
	}
	return b, nil
}

// replayer tracks the mapping from the batch's caller-chosen names to the
// ids netcore minted for them, so later commands in the same batch can
// refer back to a task or status by the name that created it.
type replayer struct {
	net      *netcore.Net
	tasks    map[string]netcore.TaskID
	statuses map[string]netcore.StatusID
}

func newReplayer(net *netcore.Net) *replayer {
	return &replayer{
		net:      net,
		tasks:    make(map[string]netcore.TaskID),
		statuses: make(map[string]netcore.StatusID),
	}
}

// Replay builds a fresh Net from b and applies its commands in order,
// stopping at the first command that fails. It returns the Net (populated
// up to and including the last successful command) and the error, if any.
func Replay(b Batch, logger *slog.Logger) (*netcore.Net, error) {
	defaultName := b.DefaultStatus
	if defaultName == "" {
		defaultName = "default"
	}
	acceptedName := b.AcceptedStatus
	if acceptedName == "" {
		acceptedName = "accepted"
	}

	net := netcore.NewNet(defaultName, acceptedName, netcore.WithLogger(logger))
	r := newReplayer(net)
	r.statuses[defaultName] = net.DefaultID()
	r.statuses[acceptedName] = net.AcceptedID()

	for _, name := range b.Statuses {
		if _, ok := r.statuses[name]; ok {
			continue
		}
		r.statuses[name] = net.NewStatus(name)
	}

	for i, cmd := range b.Commands {
		if err := r.apply(cmd); err != nil {
			return net, fmt.Errorf("command %d (%s): %w", i, cmd.Op, err)
		}
	}
	return net, nil
}

func (r *replayer) apply(cmd Command) error {
	switch cmd.Op {
	case "add_task":
		tid := netcore.NewID[netcore.TaskKind]()
		if err := r.net.AddTask(tid); err != nil {
			return err
		}
		r.tasks[cmd.Task] = tid
	case "remove_task":
		tid, err := r.taskID(cmd.Task)
		if err != nil {
			return err
		}
		if err := r.net.RemoveTask(tid); err != nil {
			return err
		}
		delete(r.tasks, cmd.Task)
	case "change_task_status":
		tid, err := r.taskID(cmd.Task)
		if err != nil {
			return err
		}
		sid, err := r.statusID(cmd.Status)
		if err != nil {
			return err
		}
		return r.net.ChangeTaskStatus(tid, sid)
	case "new_status":
		r.statuses[cmd.Status] = r.net.NewStatus(cmd.Status)
	case "remove_status":
		sid, err := r.statusID(cmd.Status)
		if err != nil {
			return err
		}
		if err := r.net.RemoveStatus(sid); err != nil {
			return err
		}
		delete(r.statuses, cmd.Status)
	case "change_status_name":
		sid, err := r.statusID(cmd.Status)
		if err != nil {
			return err
		}
		if err := r.net.ChangeStatusName(sid, cmd.NewName); err != nil {
			return err
		}
		delete(r.statuses, cmd.Status)
		r.statuses[cmd.NewName] = sid
	case "change_default":
		sid, err := r.statusID(cmd.Status)
		if err != nil {
			return err
		}
		return r.net.ChangeDefault(sid)
	case "new_relation":
		from, err := r.taskID(cmd.From)
		if err != nil {
			return err
		}
		to, err := r.taskID(cmd.To)
		if err != nil {
			return err
		}
		typ, err := parseRelationType(cmd.Relation)
		if err != nil {
			return err
		}
		return r.net.NewRelation(from, to, typ)
	case "remove_relation":
		from, err := r.taskID(cmd.From)
		if err != nil {
			return err
		}
		to, err := r.taskID(cmd.To)
		if err != nil {
			return err
		}
		return r.net.RemoveRelation(from, to)
	default:
		return fmt.Errorf("unknown op %q", cmd.Op)
	}
	return nil
}

func (r *replayer) taskID(name string) (netcore.TaskID, error) {
	tid, ok := r.tasks[name]
	if !ok {
		return netcore.TaskID{}, fmt.Errorf("unknown task name %q", name)
	}
	return tid, nil
}

func (r *replayer) statusID(name string) (netcore.StatusID, error) {
	sid, ok := r.statuses[name]
	if !ok {
		return netcore.StatusID{}, fmt.Errorf("unknown status name %q", name)
	}
	return sid, nil
}

func parseRelationType(s string) (netcore.RelationType, error) {
	switch s {
	case "Compose", "compose":
		return netcore.Compose, nil
	case "Require", "require", "":
		return netcore.Require, nil
	default:
		return 0, fmt.Errorf("unknown relation type %q", s)
	}
}
