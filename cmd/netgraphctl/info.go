package main

import (
	"flag"
	"fmt"
	"os"
)

// runInfo handles the "netgraphctl info" subcommand, printing usage and a
// description of the batch file format.
func runInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)
	printGeneralInfo()
}

func printGeneralInfo() {
	fmt.Fprintf(os.Stdout, `netgraphctl %s — replay a task-network batch file

netgraphctl builds a Net (a status schema plus a relation graph over
tasks) and replays a sequence of commands against it from a JSON batch
file, printing the number of tasks at each status and the relation edges.

USAGE

  netgraphctl replay [-config path] [-dot path] [-json path] <batch.json>
  netgraphctl info

BATCH FILE FORMAT

  {
    "default_status": "todo",
    "accepted_status": "done",
    "statuses": ["in-review"],
    "commands": [
      {"op": "add_task", "task": "a"},
      {"op": "add_task", "task": "b"},
      {"op": "new_relation", "from": "a", "to": "b", "relation": "Compose"},
      {"op": "change_task_status", "task": "a", "status": "done"}
    ]
  }

  Tasks and statuses are referred to by caller-chosen names; netgraphctl
  mints the opaque ids a Net actually stores and tracks the mapping for
  the rest of the batch. default_status and accepted_status name the two
  statuses the Net is bootstrapped with; statuses lists any additional
  schema entries. Supported ops: add_task, remove_task,
  change_task_status, new_status, remove_status, change_status_name,
  change_default, new_relation, remove_relation.

  A failing command stops the replay; netgraphctl still prints whatever
  state the net reached before the failure, then reports the error.

CONFIGURATION

  Precedence: environment variables > config file > defaults.

  NETGRAPHCTL_CONFIG              path to a netgraphctl.toml
  NETGRAPHCTL_DEFAULT_STATUS_NAME default status name when a batch omits one
  NETGRAPHCTL_ACCEPTED_STATUS_NAME accepted status name when a batch omits one
  NETGRAPHCTL_LOG_LEVEL            debug, info, warn, error (default: info)
`, Version)
}
