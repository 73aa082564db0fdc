package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/emergent-company/netgraph/internal/netcore"
	"github.com/emergent-company/netgraph/internal/netio"
)

// printReport prints a human-readable summary of net's current state:
// task counts, then the number of tasks at each status, then each relation
// edge. Individual tasks are not listed. net is
// printed even on a failed replay, reflecting whatever state the last
// successful command left behind.
func printReport(w io.Writer, net *netcore.Net) {
	if net == nil {
		return
	}
	summary := net.Summarize()
	fmt.Fprintf(w, "net %s\n", net.ID())
	fmt.Fprintf(w, "  tasks: %d (controlled %d, accepted %d)\n",
		summary.TaskCount, summary.ControlledCount, summary.AcceptedCount)

	names := make(map[netcore.StatusID]string, len(net.Statuses()))
	for _, se := range net.Statuses() {
		names[se.ID] = se.Name
	}

	statusIDs := make([]netcore.StatusID, 0, len(summary.PerStatus))
	for sid := range summary.PerStatus {
		statusIDs = append(statusIDs, sid)
	}
	sort.Slice(statusIDs, func(i, j int) bool { return names[statusIDs[i]] < names[statusIDs[j]] })
	for _, sid := range statusIDs {
		fmt.Fprintf(w, "    %-20s %d\n", names[sid], summary.PerStatus[sid])
	}

	edges := net.Edges()
	if len(edges) > 0 {
		fmt.Fprintf(w, "  relations: %d\n", len(edges))
		for _, e := range edges {
			fmt.Fprintf(w, "    %s --%s--> %s\n", e.From, e.Type, e.To)
		}
	}
}

func writeDotFile(path string, net *netcore.Net) error {
	return os.WriteFile(path, []byte(netio.WriteDot(net)), 0o644)
}

func writeSnapshotFile(path string, net *netcore.Net) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()
	return netio.WriteJSON(f, net)
}
