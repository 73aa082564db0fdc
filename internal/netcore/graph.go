package netcore

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// RelationType is the label carried by an edge of the relation graph.
type RelationType int

const (
	// Require: from must be accepted for to to be considered satisfied by
	// this edge; never by itself causes to to be accepted automatically.
	// Like any incoming edge, it makes to controlled (its status cannot be
	// set directly).
	Require RelationType = iota
	// Compose: from is a subtask of to; implies Require, and a task with at
	// least one Compose parent is accepted automatically once all of its
	// parents are accepted.
	Compose
)

func (t RelationType) String() string {
	switch t {
	case Compose:
		return "Compose"
	default:
		return "Require"
	}
}

// Edge describes one relation edge for observability purposes.
type Edge struct {
	From TaskID
	To   TaskID
	Type RelationType
}

// relEdge is the gonum graph.Edge implementation carrying our relation
// type. gonum's DirectedGraph stores edges as this interface so we can
// label them with anything we need.
type relEdge struct {
	from, to graph.Node
	typ      RelationType
}

func (e relEdge) From() graph.Node         { return e.from }
func (e relEdge) To() graph.Node           { return e.to }
func (e relEdge) ReversedEdge() graph.Edge { return relEdge{from: e.to, to: e.from, typ: e.typ} }

// relationGraph is a directed graph over task identifiers whose edges carry
// a RelationType. It wraps a gonum simple.DirectedGraph (keyed by int64)
// behind a TaskID-keyed API, using a stable external id vs internal graph
// key split so opaque UUIDs never have to satisfy graph.Node themselves.
type relationGraph struct {
	g      *simple.DirectedGraph
	nodeOf map[TaskID]int64
	idOf   map[int64]TaskID
	nextID int64
}

func newRelationGraph() *relationGraph {
	return &relationGraph{
		g:      simple.NewDirectedGraph(),
		nodeOf: make(map[TaskID]int64),
		idOf:   make(map[int64]TaskID),
	}
}

func (rg *relationGraph) addNode(t TaskID) {
	if _, ok := rg.nodeOf[t]; ok {
		return
	}
	id := rg.nextID
	rg.nextID++
	rg.nodeOf[t] = id
	rg.idOf[id] = t
	rg.g.AddNode(simple.Node(id))
}

func (rg *relationGraph) removeNode(t TaskID) {
	id, ok := rg.nodeOf[t]
	if !ok {
		return
	}
	rg.g.RemoveNode(id)
	delete(rg.nodeOf, t)
	delete(rg.idOf, id)
}

func (rg *relationGraph) has(t TaskID) bool {
	_, ok := rg.nodeOf[t]
	return ok
}

// setEdge inserts or replaces the edge from -> to with the given type.
// Both endpoints must already be nodes of the graph.
func (rg *relationGraph) setEdge(from, to TaskID, typ RelationType) {
	fid, tid := rg.nodeOf[from], rg.nodeOf[to]
	rg.g.SetEdge(relEdge{from: simple.Node(fid), to: simple.Node(tid), typ: typ})
}

func (rg *relationGraph) removeEdge(from, to TaskID) {
	fid, fok := rg.nodeOf[from]
	tid, tok := rg.nodeOf[to]
	if !fok || !tok {
		return
	}
	rg.g.RemoveEdge(fid, tid)
}

// pathExists reports whether a directed path from -> ... -> to exists.
// Used to pre-check new_relation(from, to): a new edge from->to would close
// a cycle iff a path to -> ... -> from already exists.
func (rg *relationGraph) pathExists(from, to TaskID) bool {
	fid, fok := rg.nodeOf[from]
	tid, tok := rg.nodeOf[to]
	if !fok || !tok {
		return false
	}
	if fid == tid {
		return true
	}
	found := false
	var bf traverse.BreadthFirst
	bf.Walk(rg.g, simple.Node(fid), func(n graph.Node, _ int) bool {
		if n.ID() == tid {
			found = true
			return true
		}
		return false
	})
	return found
}

// topoOrder returns all task nodes in a valid topological order. A cycle
// here indicates internal corruption (acyclicity is enforced at insertion
// time by pathExists) and is reported as CycleNotAllowedInNet.
func (rg *relationGraph) topoOrder(net NetID) ([]TaskID, error) {
	sorted, err := topo.SortStabilized(rg.g, func(nodes []graph.Node) {
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	})
	if err != nil {
		return nil, errCycleNotAllowed(net)
	}
	out := make([]TaskID, len(sorted))
	for i, n := range sorted {
		out[i] = rg.idOf[n.ID()]
	}
	return out, nil
}

// incoming returns the edges pointing at t, labeled with their relation
// type, in an unspecified but stable order.
func (rg *relationGraph) incoming(t TaskID) []Edge {
	tid, ok := rg.nodeOf[t]
	if !ok {
		return nil
	}
	var out []Edge
	it := rg.g.To(tid)
	for it.Next() {
		from := it.Node()
		e := rg.g.Edge(from.ID(), tid).(relEdge)
		out = append(out, Edge{From: rg.idOf[from.ID()], To: t, Type: e.typ})
	}
	sort.Slice(out, func(i, j int) bool {
		return rg.nodeOf[out[i].From] < rg.nodeOf[out[j].From]
	})
	return out
}

// allEdges returns every edge currently in the graph, for observability.
func (rg *relationGraph) allEdges() []Edge {
	var out []Edge
	nodes := rg.g.Nodes()
	for nodes.Next() {
		to := nodes.Node()
		out = append(out, rg.incoming(rg.idOf[to.ID()])...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return rg.nodeOf[out[i].To] < rg.nodeOf[out[j].To]
		}
		return rg.nodeOf[out[i].From] < rg.nodeOf[out[j].From]
	})
	return out
}
