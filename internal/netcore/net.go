package netcore

import (
	"log/slog"

	"github.com/emergent-company/netgraph/internal/validation"
)

// Net is the task-network aggregate: a status schema, a relation graph over
// task identifiers, and the task-status map those two govern together. A
// Net is not safe for concurrent use; callers serialize mutations
// externally.
type Net struct {
	id       NetID
	schema   schema
	graph    *relationGraph
	statuses map[TaskID]StatusID
	logger   *slog.Logger
}

// Option configures a Net at construction time.
type Option func(*Net)

// WithLogger attaches a structured logger used for propagation and command
// diagnostics. Without it, Net logs nowhere.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Net) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// NewNet creates a Net whose schema is bootstrapped with exactly two
// statuses: defaultName (becomes the default status) and acceptedName
// (becomes the accepted status). The task-status map and relation graph
// start empty.
func NewNet(defaultName, acceptedName string, opts ...Option) *Net {
	n := &Net{
		id:       NewID[NetKind](),
		schema:   newSchema(defaultName, acceptedName),
		graph:    newRelationGraph(),
		statuses: make(map[TaskID]StatusID),
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ID returns the Net's own identifier.
func (n *Net) ID() NetID { return n.id }

// -- read-only observability --

// Statuses returns the schema's current entries. Order is unspecified.
func (n *Net) Statuses() []StatusEntry { return n.schema.list() }

// DefaultID returns the current default status id.
func (n *Net) DefaultID() StatusID { return n.schema.defaultID }

// AcceptedID returns the accepted status id.
func (n *Net) AcceptedID() StatusID { return n.schema.acceptedID }

// Tasks returns every task id currently in the Net. Order is unspecified.
func (n *Net) Tasks() []TaskID {
	out := make([]TaskID, 0, len(n.statuses))
	for t := range n.statuses {
		out = append(out, t)
	}
	return out
}

// HasTask reports whether tid is a member of the Net.
func (n *Net) HasTask(tid TaskID) bool {
	_, ok := n.statuses[tid]
	return ok
}

// StatusOf returns the status currently assigned to tid, and whether tid is
// a member of the Net.
func (n *Net) StatusOf(tid TaskID) (StatusID, bool) {
	sid, ok := n.statuses[tid]
	return sid, ok
}

// IsControlled reports whether tid has at least one incoming edge. Panics
// behavior is avoided: an absent task simply has no edges and reports
// uncontrolled.
func (n *Net) IsControlled(tid TaskID) bool {
	return len(n.graph.incoming(tid)) > 0
}

// Edges returns every relation edge in the Net, labeled by type.
func (n *Net) Edges() []Edge { return n.graph.allEdges() }

// -- status schema --

// NewStatus appends a new status with the given name. Never fails.
func (n *Net) NewStatus(name string) StatusID {
	id := n.schema.append(name)
	n.logger.Debug("status created", "net", n.id, "status", id, "name", name)
	return id
}

// RemoveStatus removes sid from the schema and reassigns every task
// carrying it to the default status, then runs full propagation.
func (n *Net) RemoveStatus(sid StatusID) error {
	if err := validation.Run(
		validation.If("status exists", !n.schema.has(sid), errStatusNotFound(n.id, sid)),
		validation.If("not default or accepted", sid == n.schema.defaultID || sid == n.schema.acceptedID, errStatusNotRemovable(n.id, sid)),
	); err != nil {
		return err
	}

	for tid, s := range n.statuses {
		if s == sid {
			n.statuses[tid] = n.schema.defaultID
		}
	}
	n.schema.remove(sid)
	n.logger.Debug("status removed", "net", n.id, "status", sid)
	return n.propagateFull()
}

// ChangeStatusName renames sid.
func (n *Net) ChangeStatusName(sid StatusID, name string) error {
	if !n.schema.rename(sid, name) {
		return errStatusNotFound(n.id, sid)
	}
	return nil
}

// ChangeDefault reassigns every task currently at the old default status to
// newDefault, then makes newDefault the default. No propagation is needed:
// the controlling predicate compares against accepted_id, which is
// unchanged, so default-valued controlled tasks remain default-valued.
func (n *Net) ChangeDefault(newDefault StatusID) error {
	if !n.schema.has(newDefault) {
		return errStatusNotFound(n.id, newDefault)
	}
	old := n.schema.defaultID
	if old == newDefault {
		return nil
	}
	for tid, s := range n.statuses {
		if s == old {
			n.statuses[tid] = newDefault
		}
	}
	n.schema.defaultID = newDefault
	n.logger.Debug("default status changed", "net", n.id, "from", old, "to", newDefault)
	return nil
}

// -- task membership --

// AddTask inserts tid with the default status and adds an isolated node to
// the relation graph.
func (n *Net) AddTask(tid TaskID) error {
	if err := validation.Run(
		validation.If("task absent", n.HasTask(tid), errTaskAlreadyInNet(n.id, tid)),
	); err != nil {
		return err
	}
	n.statuses[tid] = n.schema.defaultID
	n.graph.addNode(tid)
	n.logger.Debug("task added", "net", n.id, "task", tid)
	return nil
}

// RemoveTask removes tid from the task-status map and the relation graph
// (with all incident edges). Absent tid is a silent no-op, for idempotent
// callers. Full propagation runs regardless, since deleting an
// incoming-edge source may reclassify its descendants.
func (n *Net) RemoveTask(tid TaskID) error {
	delete(n.statuses, tid)
	n.graph.removeNode(tid)
	n.logger.Debug("task removed", "net", n.id, "task", tid)
	return n.propagateFull()
}

// ChangeTaskStatus sets tid's status directly. Fails if tid is absent, if
// tid is controlled (has any incoming edge — its status is derived, not
// set), or if sid does not name a status in the schema.
func (n *Net) ChangeTaskStatus(tid TaskID, sid StatusID) error {
	if err := validation.Run(
		validation.If("task present", !n.HasTask(tid), errTaskNotFound(n.id, tid)),
		validation.If("task uncontrolled", n.IsControlled(tid), errRelationConstraintNotSatisfied(n.id, tid)),
		validation.If("status exists", !n.schema.has(sid), errStatusNotFound(n.id, sid)),
	); err != nil {
		return err
	}
	n.statuses[tid] = sid
	n.logger.Debug("task status changed", "net", n.id, "task", tid, "status", sid)
	return n.propagateAfter(tid)
}

// -- relation graph --

// NewRelation inserts or replaces the (from, to) edge with the given type.
// Fails with TaskNotFoundInNet if from or to is not already a task in the
// Net (added via AddTask), and with CycleNotAllowedInNet if a path
// to -> ... -> from already exists.
func (n *Net) NewRelation(from, to TaskID, typ RelationType) error {
	if err := validation.Run(
		validation.If("from present", !n.HasTask(from), errTaskNotFound(n.id, from)),
		validation.If("to present", !n.HasTask(to), errTaskNotFound(n.id, to)),
		validation.If("no back-path to->from", n.graph.pathExists(to, from), errCycleNotAllowed(n.id)),
	); err != nil {
		return err
	}
	n.graph.setEdge(from, to, typ)
	n.logger.Debug("relation added", "net", n.id, "from", from, "to", to, "type", typ)
	return n.propagateAt(to)
}

// RemoveRelation removes the (from, to) edge if present; absent edges are
// a silent no-op. Propagation runs starting at to, whose parent set just
// changed.
func (n *Net) RemoveRelation(from, to TaskID) error {
	if !n.HasTask(to) {
		// Nothing to propagate: to was never a member, or was already
		// removed by RemoveTask (which already ran full propagation).
		return nil
	}
	n.graph.removeEdge(from, to)
	n.logger.Debug("relation removed", "net", n.id, "from", from, "to", to)
	return n.propagateAt(to)
}
