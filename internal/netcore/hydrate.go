package netcore

// HydrateStatus is one schema entry supplied to Hydrate, with its id fixed
// by the caller rather than freshly minted.
type HydrateStatus struct {
	ID   StatusID
	Name string
}

// HydrateEdge is one relation edge supplied to Hydrate.
type HydrateEdge struct {
	From TaskID
	To   TaskID
	Type RelationType
}

// HydrateInput is the full observable state needed to reconstruct a Net
// without replaying its command history — the counterpart to the
// accessors in net.go. Used by internal/netio to load a previously
// exported snapshot. This bypasses the command surface entirely, the same
// way loading an aggregate row straight from storage bypasses its own
// command methods; Hydrate does not mint new ids for anything it is given.
type HydrateInput struct {
	Statuses   []HydrateStatus
	DefaultID  StatusID
	AcceptedID StatusID
	Tasks      map[TaskID]StatusID
	Edges      []HydrateEdge
}

// Hydrate rebuilds a Net from a previously captured state. It validates
// schema integrity and graph/membership coherence before running full
// propagation to restore the accepted/default fixpoint, in case the
// snapshot was captured, edited, and re-supplied by a caller that didn't
// keep it consistent by hand.
func Hydrate(in HydrateInput, opts ...Option) (*Net, error) {
	n := &Net{
		id:       NewID[NetKind](),
		graph:    newRelationGraph(),
		statuses: make(map[TaskID]StatusID, len(in.Tasks)),
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}

	n.schema = schema{index: make(map[StatusID]int, len(in.Statuses))}
	for _, se := range in.Statuses {
		n.schema.index[se.ID] = len(n.schema.entries)
		n.schema.entries = append(n.schema.entries, StatusEntry{ID: se.ID, Name: se.Name})
	}
	if !n.schema.has(in.DefaultID) {
		return nil, errStatusNotFound(n.id, in.DefaultID)
	}
	if !n.schema.has(in.AcceptedID) {
		return nil, errStatusNotFound(n.id, in.AcceptedID)
	}
	n.schema.defaultID = in.DefaultID
	n.schema.acceptedID = in.AcceptedID

	for tid, sid := range in.Tasks {
		if !n.schema.has(sid) {
			return nil, errStatusNotFound(n.id, sid)
		}
		n.graph.addNode(tid)
		n.statuses[tid] = sid
	}
	for _, e := range in.Edges {
		if !n.HasTask(e.From) {
			return nil, errTaskNotFound(n.id, e.From)
		}
		if !n.HasTask(e.To) {
			return nil, errTaskNotFound(n.id, e.To)
		}
		n.graph.setEdge(e.From, e.To, e.Type)
	}

	if err := n.propagateFull(); err != nil {
		return nil, err
	}
	return n, nil
}
