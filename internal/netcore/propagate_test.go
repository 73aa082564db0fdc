package netcore

import "testing"

func TestClassify_NoIncomingEdgesIsUncontrolled(t *testing.T) {
	n := NewNet("default", "accepted")
	tid := NewID[TaskKind]()
	if err := n.AddTask(tid); err != nil {
		t.Fatal(err)
	}
	if got := n.classify(tid); got != uncontrolled {
		t.Fatalf("classify() = %v, want uncontrolled", got)
	}
}

func TestClassify_RequireOnlyAllAcceptedIsUncontrolled(t *testing.T) {
	n := NewNet("default", "accepted")
	a, b := NewID[TaskKind](), NewID[TaskKind]()
	if err := n.AddTask(a); err != nil {
		t.Fatal(err)
	}
	if err := n.AddTask(b); err != nil {
		t.Fatal(err)
	}
	if err := n.NewRelation(a, b, Require); err != nil {
		t.Fatal(err)
	}
	n.statuses[a] = n.schema.acceptedID

	if got := n.classify(b); got != uncontrolled {
		t.Fatalf("classify() = %v, want uncontrolled (Require alone never forces acceptance)", got)
	}
}

func TestClassify_ComposeWithUnacceptedParentIsControlledNotAccepted(t *testing.T) {
	n := NewNet("default", "accepted")
	a, b := NewID[TaskKind](), NewID[TaskKind]()
	if err := n.AddTask(a); err != nil {
		t.Fatal(err)
	}
	if err := n.AddTask(b); err != nil {
		t.Fatal(err)
	}
	if err := n.NewRelation(a, b, Compose); err != nil {
		t.Fatal(err)
	}

	if got := n.classify(b); got != controlledNotAccepted {
		t.Fatalf("classify() = %v, want controlledNotAccepted", got)
	}
}

func TestClassify_ComposeWithAcceptedParentIsControlledAccepted(t *testing.T) {
	n := NewNet("default", "accepted")
	a, b := NewID[TaskKind](), NewID[TaskKind]()
	if err := n.AddTask(a); err != nil {
		t.Fatal(err)
	}
	if err := n.AddTask(b); err != nil {
		t.Fatal(err)
	}
	if err := n.NewRelation(a, b, Compose); err != nil {
		t.Fatal(err)
	}
	n.statuses[a] = n.schema.acceptedID

	if got := n.classify(b); got != controlledAccepted {
		t.Fatalf("classify() = %v, want controlledAccepted", got)
	}
}

func TestPropagateFull_IsIdempotent(t *testing.T) {
	n := NewNet("default", "accepted")
	t1, t2, t3 := NewID[TaskKind](), NewID[TaskKind](), NewID[TaskKind]()
	for _, tid := range []TaskID{t1, t2, t3} {
		if err := n.AddTask(tid); err != nil {
			t.Fatal(err)
		}
	}
	if err := n.NewRelation(t1, t3, Compose); err != nil {
		t.Fatal(err)
	}
	if err := n.NewRelation(t2, t3, Require); err != nil {
		t.Fatal(err)
	}
	if err := n.ChangeTaskStatus(t1, n.AcceptedID()); err != nil {
		t.Fatal(err)
	}
	if err := n.ChangeTaskStatus(t2, n.AcceptedID()); err != nil {
		t.Fatal(err)
	}

	before := map[TaskID]StatusID{t1: n.statuses[t1], t2: n.statuses[t2], t3: n.statuses[t3]}
	if err := n.propagateFull(); err != nil {
		t.Fatal(err)
	}
	for tid, want := range before {
		if n.statuses[tid] != want {
			t.Fatalf("propagateFull mutated task %s from %s to %s on a second pass", tid, want, n.statuses[tid])
		}
	}
}
