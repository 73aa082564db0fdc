package netcore

import "log/slog"

// classification is the result of evaluating a controlled task's incoming
// edges against its parents' current statuses.
type classification int

const (
	uncontrolled classification = iota
	controlledNotAccepted
	controlledAccepted
)

// classify derives the classification of task t from its incoming edges
// and the current status of each parent. A task with no incoming edges is
// always uncontrolled; the propagator leaves it alone.
func (n *Net) classify(t TaskID) classification {
	edges := n.graph.incoming(t)
	if len(edges) == 0 {
		return uncontrolled
	}
	anyCompose := false
	allAccepted := true
	for _, e := range edges {
		if e.Type == Compose {
			anyCompose = true
		}
		if n.statuses[e.From] != n.schema.acceptedID {
			allAccepted = false
		}
	}
	switch {
	case !allAccepted:
		return controlledNotAccepted
	case anyCompose:
		return controlledAccepted
	default:
		return uncontrolled
	}
}

// propagateFrom walks the topological order starting at index `from`
// (inclusive) and brings every controlled task's status into agreement
// with classify. It mutates only n.statuses.
func (n *Net) propagateFrom(from int) error {
	order, err := n.graph.topoOrder(n.id)
	if err != nil {
		return err
	}
	for _, t := range order[from:] {
		switch n.classify(t) {
		case controlledAccepted:
			if n.statuses[t] != n.schema.acceptedID {
				n.logger.Debug("propagation accepted task", "net", n.id, "task", t)
				n.statuses[t] = n.schema.acceptedID
			}
		case controlledNotAccepted:
			if n.statuses[t] == n.schema.acceptedID {
				n.logger.Debug("propagation demoted task", "net", n.id, "task", t)
				n.statuses[t] = n.schema.defaultID
			}
		case uncontrolled:
			// leave status alone
		}
	}
	return nil
}

// propagateFull runs propagation over the whole topological order.
func (n *Net) propagateFull() error {
	return n.propagateFrom(0)
}

// propagateAt runs propagation starting at t's own position (inclusive):
// t's controlled-ness may have just changed because it gained or lost an
// incoming edge.
func (n *Net) propagateAt(t TaskID) error {
	order, err := n.graph.topoOrder(n.id)
	if err != nil {
		return err
	}
	idx := indexOf(order, t)
	if idx < 0 {
		return errTaskNotFound(n.id, t)
	}
	return n.propagateFrom(idx)
}

// propagateAfter runs propagation starting strictly after t's position:
// t's own status was just set authoritatively, only its descendants need
// reconsideration.
func (n *Net) propagateAfter(t TaskID) error {
	order, err := n.graph.topoOrder(n.id)
	if err != nil {
		return err
	}
	idx := indexOf(order, t)
	if idx < 0 {
		return errTaskNotFound(n.id, t)
	}
	return n.propagateFrom(idx + 1)
}

func indexOf(order []TaskID, t TaskID) int {
	for i, candidate := range order {
		if candidate == t {
			return i
		}
	}
	return -1
}

// discardLogger is used when NewNet or Hydrate is called without
// WithLogger, so command and propagation code can log without a nil check
// on every call.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
