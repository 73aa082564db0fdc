// Command netgraphctl loads a task-network batch file, replays its
// commands against a fresh Net, and prints the resulting observable
// state.
//
// Usage:
//
//	netgraphctl replay [-config path] [-dot path] [-json path] <batch.json>
//	netgraphctl info
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emergent-company/netgraph/internal/config"
	"github.com/emergent-company/netgraph/internal/netlog"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "netgraphctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return runReplay(nil)
	}
	switch args[0] {
	case "info":
		runInfo(args[1:])
		return nil
	case "replay":
		return runReplay(args[1:])
	case "-h", "-help", "--help":
		runInfo(nil)
		return nil
	default:
		return runReplay(args)
	}
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to netgraphctl.toml (optional)")
	dotPath := fs.String("dot", "", "write a Graphviz DOT export of the resulting net to this path")
	jsonPath := fs.String("json", "", "write a JSON snapshot of the resulting net to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: netgraphctl replay [-config path] [-dot path] [-json path] <batch.json>")
	}
	batchPath := fs.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := netlog.New(cfg.Log.Level)

	f, err := os.Open(batchPath)
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	batch, err := ReadBatch(f)
	if err != nil {
		return err
	}
	if batch.DefaultStatus == "" {
		batch.DefaultStatus = cfg.Net.DefaultStatusName
	}
	if batch.AcceptedStatus == "" {
		batch.AcceptedStatus = cfg.Net.AcceptedStatusName
	}

	net, replayErr := Replay(batch, logger)
	printReport(os.Stdout, net)

	if *dotPath != "" {
		if err := writeDotFile(*dotPath, net); err != nil {
			return err
		}
	}
	if *jsonPath != "" {
		if err := writeSnapshotFile(*jsonPath, net); err != nil {
			return err
		}
	}

	return replayErr
}
