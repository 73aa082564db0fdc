package netcore

import "testing"

func TestRelationGraph_PathExists(t *testing.T) {
	rg := newRelationGraph()
	a, b, c := NewID[TaskKind](), NewID[TaskKind](), NewID[TaskKind]()
	rg.addNode(a)
	rg.addNode(b)
	rg.addNode(c)
	rg.setEdge(a, b, Require)
	rg.setEdge(b, c, Require)

	if !rg.pathExists(a, c) {
		t.Fatal("expected transitive path a -> b -> c to be found")
	}
	if rg.pathExists(c, a) {
		t.Fatal("did not expect a path from c back to a")
	}
	if !rg.pathExists(a, a) {
		t.Fatal("a node trivially has a path to itself for cycle-check purposes")
	}
}

func TestRelationGraph_RemoveNodeDropsIncidentEdges(t *testing.T) {
	rg := newRelationGraph()
	a, b := NewID[TaskKind](), NewID[TaskKind]()
	rg.addNode(a)
	rg.addNode(b)
	rg.setEdge(a, b, Compose)

	rg.removeNode(a)

	if got := rg.incoming(b); len(got) != 0 {
		t.Fatalf("incoming(b) = %v, want none after removing a", got)
	}
}

func TestRelationGraph_TopoOrderRespectsEdges(t *testing.T) {
	rg := newRelationGraph()
	a, b, c := NewID[TaskKind](), NewID[TaskKind](), NewID[TaskKind]()
	rg.addNode(c)
	rg.addNode(a)
	rg.addNode(b)
	rg.setEdge(a, b, Require)
	rg.setEdge(b, c, Require)

	order, err := rg.topoOrder(NetID{})
	if err != nil {
		t.Fatalf("topoOrder: %v", err)
	}
	pos := map[TaskID]int{}
	for i, tid := range order {
		pos[tid] = i
	}
	if pos[a] > pos[b] || pos[b] > pos[c] {
		t.Fatalf("expected order a < b < c, got positions %v", pos)
	}
}

func TestRelationGraph_IncomingLabelsRelationType(t *testing.T) {
	rg := newRelationGraph()
	a, b, c := NewID[TaskKind](), NewID[TaskKind](), NewID[TaskKind]()
	rg.addNode(a)
	rg.addNode(b)
	rg.addNode(c)
	rg.setEdge(a, c, Compose)
	rg.setEdge(b, c, Require)

	edges := rg.incoming(c)
	if len(edges) != 2 {
		t.Fatalf("incoming(c) has %d edges, want 2", len(edges))
	}
	types := map[TaskID]RelationType{}
	for _, e := range edges {
		types[e.From] = e.Type
	}
	if types[a] != Compose {
		t.Fatalf("edge a->c type = %v, want Compose", types[a])
	}
	if types[b] != Require {
		t.Fatalf("edge b->c type = %v, want Require", types[b])
	}
}
