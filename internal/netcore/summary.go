package netcore

// Summary is a point-in-time rollup of a Net's task-status distribution,
// computed as a pure synchronous method rather than a dispatched command.
type Summary struct {
	TaskCount        int
	ControlledCount  int
	AcceptedCount    int
	PerStatus        map[StatusID]int
}

// Summarize computes a Summary of the Net's current state.
func (n *Net) Summarize() Summary {
	s := Summary{
		TaskCount: len(n.statuses),
		PerStatus: make(map[StatusID]int, len(n.schema.entries)),
	}
	for tid, sid := range n.statuses {
		s.PerStatus[sid]++
		if sid == n.schema.acceptedID {
			s.AcceptedCount++
		}
		if n.IsControlled(tid) {
			s.ControlledCount++
		}
	}
	return s
}
