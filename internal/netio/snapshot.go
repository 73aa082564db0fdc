// Package netio provides optional, read-only serialization utilities for a
// netcore.Net: a JSON snapshot format and a DOT graph export. Neither is a
// Net responsibility — the Net itself never touches a filesystem — these
// are external conveniences a host may use.
package netio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/emergent-company/netgraph/internal/netcore"
)

// Snapshot is the observable state of a Net, suitable for JSON encoding.
type Snapshot struct {
	Statuses   []StatusEntry              `json:"statuses"`
	DefaultID  netcore.StatusID           `json:"default_id"`
	AcceptedID netcore.StatusID           `json:"accepted_id"`
	Tasks      map[netcore.TaskID]netcore.StatusID `json:"tasks"`
	Edges      []EdgeEntry                `json:"edges"`
}

// StatusEntry mirrors netcore.StatusEntry for encoding purposes.
type StatusEntry struct {
	ID   netcore.StatusID `json:"id"`
	Name string           `json:"name"`
}

// EdgeEntry mirrors netcore.Edge for encoding purposes.
type EdgeEntry struct {
	From netcore.TaskID      `json:"from"`
	To   netcore.TaskID      `json:"to"`
	Type netcore.RelationType `json:"type"`
}

// MarshalJSON renders the relation type as its name ("Require"/"Compose")
// rather than a bare integer, so snapshots stay legible without importing
// netcore's constants.
func (e EdgeEntry) MarshalJSON() ([]byte, error) {
	type alias struct {
		From netcore.TaskID `json:"from"`
		To   netcore.TaskID `json:"to"`
		Type string         `json:"type"`
	}
	return json.Marshal(alias{From: e.From, To: e.To, Type: e.Type.String()})
}

// UnmarshalJSON parses the named relation type back into a RelationType.
func (e *EdgeEntry) UnmarshalJSON(b []byte) error {
	var alias struct {
		From netcore.TaskID `json:"from"`
		To   netcore.TaskID `json:"to"`
		Type string         `json:"type"`
	}
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}
	e.From, e.To = alias.From, alias.To
	switch alias.Type {
	case "Compose":
		e.Type = netcore.Compose
	case "Require":
		e.Type = netcore.Require
	default:
		return fmt.Errorf("netio: unknown relation type %q", alias.Type)
	}
	return nil
}

func takeSnapshot(n *netcore.Net) Snapshot {
	entries := n.Statuses()
	statuses := make([]StatusEntry, len(entries))
	for i, e := range entries {
		statuses[i] = StatusEntry{ID: e.ID, Name: e.Name}
	}

	tasks := make(map[netcore.TaskID]netcore.StatusID, len(n.Tasks()))
	for _, tid := range n.Tasks() {
		sid, _ := n.StatusOf(tid)
		tasks[tid] = sid
	}

	edges := n.Edges()
	out := make([]EdgeEntry, len(edges))
	for i, e := range edges {
		out[i] = EdgeEntry{From: e.From, To: e.To, Type: e.Type}
	}

	return Snapshot{
		Statuses:   statuses,
		DefaultID:  n.DefaultID(),
		AcceptedID: n.AcceptedID(),
		Tasks:      tasks,
		Edges:      out,
	}
}

// Take captures n's current observable state as a Snapshot.
func Take(n *netcore.Net) Snapshot {
	return takeSnapshot(n)
}

// WriteJSON writes a Snapshot of n to w as indented JSON.
func WriteJSON(w io.Writer, n *netcore.Net) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Take(n))
}

// ReadJSON decodes a Snapshot from r.
func ReadJSON(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("netio: decoding snapshot: %w", err)
	}
	return snap, nil
}

// Restore rebuilds a *netcore.Net from a Snapshot via netcore.Hydrate.
func Restore(snap Snapshot, opts ...netcore.Option) (*netcore.Net, error) {
	hs := make([]netcore.HydrateStatus, len(snap.Statuses))
	for i, s := range snap.Statuses {
		hs[i] = netcore.HydrateStatus{ID: s.ID, Name: s.Name}
	}
	he := make([]netcore.HydrateEdge, len(snap.Edges))
	for i, e := range snap.Edges {
		he[i] = netcore.HydrateEdge{From: e.From, To: e.To, Type: e.Type}
	}
	return netcore.Hydrate(netcore.HydrateInput{
		Statuses:   hs,
		DefaultID:  snap.DefaultID,
		AcceptedID: snap.AcceptedID,
		Tasks:      snap.Tasks,
		Edges:      he,
	}, opts...)
}
