package netio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emergent-company/netgraph/internal/netcore"
)

// WriteDot renders n's relation graph as Graphviz DOT, for visualization
// and troubleshooting. Compose edges are drawn solid and black; Require
// edges dashed and grey.
func WriteDot(n *netcore.Net) string {
	var sb strings.Builder
	sb.WriteString("digraph net {\n")

	tasks := n.Tasks()
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].String() < tasks[j].String() })
	for _, tid := range tasks {
		sid, _ := n.StatusOf(tid)
		label := statusLabel(n, sid)
		fillColor := "lightgrey"
		if sid == n.AcceptedID() {
			fillColor = "palegreen"
		}
		fmt.Fprintf(&sb, "\t%q [label=%q, style=filled, fillcolor=%s, tooltip=%q];\n",
			nodeName(tid), label, fillColor, tid.String())
	}

	for _, e := range n.Edges() {
		color, style := "black", "solid"
		if e.Type == netcore.Require {
			color, style = "grey40", "dashed"
		}
		fmt.Fprintf(&sb, "\t%q -> %q [color=%s, style=%s, label=%q];\n",
			nodeName(e.From), nodeName(e.To), color, style, e.Type.String())
	}

	sb.WriteString("}\n")
	return sb.String()
}

func statusLabel(n *netcore.Net, sid netcore.StatusID) string {
	for _, e := range n.Statuses() {
		if e.ID == sid {
			return e.Name
		}
	}
	return sid.String()
}

func nodeName(tid netcore.TaskID) string {
	return tid.String()
}
