package netcore

import (
	"errors"
	"fmt"
)

// ErrorKind tags a netcore error with the failure mode from the command
// precondition table, so callers can branch on it with errors.Is against
// the matching sentinel below instead of parsing messages.
type ErrorKind int

const (
	_ ErrorKind = iota
	KindStatusNotFound
	KindTaskNotFound
	KindTaskAlreadyInNet
	KindStatusNotRemovable
	KindRelationConstraintNotSatisfied
	KindCycleNotAllowed
	KindRelationNotFound
)

// Sentinel errors, one per ErrorKind, for use with errors.Is. Error wraps
// one of these alongside the offending net/status/task/edge identifiers.
var (
	ErrStatusNotFound               = errors.New("status not found in net")
	ErrTaskNotFound                 = errors.New("task not found in net")
	ErrTaskAlreadyInNet              = errors.New("task already in net")
	ErrStatusNotRemovable            = errors.New("status not removable")
	ErrRelationConstraintNotSatisfied = errors.New("relation constraint not satisfied")
	ErrCycleNotAllowed               = errors.New("cycle not allowed in net")
	ErrRelationNotFound              = errors.New("relation not found in net")
)

func sentinelFor(kind ErrorKind) error {
	switch kind {
	case KindStatusNotFound:
		return ErrStatusNotFound
	case KindTaskNotFound:
		return ErrTaskNotFound
	case KindTaskAlreadyInNet:
		return ErrTaskAlreadyInNet
	case KindStatusNotRemovable:
		return ErrStatusNotRemovable
	case KindRelationConstraintNotSatisfied:
		return ErrRelationConstraintNotSatisfied
	case KindCycleNotAllowed:
		return ErrCycleNotAllowed
	case KindRelationNotFound:
		return ErrRelationNotFound
	default:
		return errors.New("unknown netcore error")
	}
}

// Error is the single tagged error type returned by every Net command. It
// carries the identifiers relevant to the failure so callers can report
// precisely what was rejected and why, without string-parsing.
type Error struct {
	Kind   ErrorKind
	Net    NetID
	Status StatusID
	Task   TaskID
	From   TaskID
	To     TaskID
}

func (e *Error) Error() string {
	sentinel := sentinelFor(e.Kind)
	switch e.Kind {
	case KindStatusNotFound, KindStatusNotRemovable:
		return fmt.Sprintf("%s: net=%s status=%s", sentinel, e.Net, e.Status)
	case KindTaskNotFound, KindTaskAlreadyInNet, KindRelationConstraintNotSatisfied:
		return fmt.Sprintf("%s: net=%s task=%s", sentinel, e.Net, e.Task)
	case KindCycleNotAllowed:
		return fmt.Sprintf("%s: net=%s", sentinel, e.Net)
	case KindRelationNotFound:
		return fmt.Sprintf("%s: net=%s from=%s to=%s", sentinel, e.Net, e.From, e.To)
	default:
		return sentinel.Error()
	}
}

// Unwrap lets errors.Is(err, netcore.ErrStatusNotFound) etc. succeed.
func (e *Error) Unwrap() error {
	return sentinelFor(e.Kind)
}

func errStatusNotFound(net NetID, status StatusID) error {
	return &Error{Kind: KindStatusNotFound, Net: net, Status: status}
}

func errTaskNotFound(net NetID, task TaskID) error {
	return &Error{Kind: KindTaskNotFound, Net: net, Task: task}
}

func errTaskAlreadyInNet(net NetID, task TaskID) error {
	return &Error{Kind: KindTaskAlreadyInNet, Net: net, Task: task}
}

func errStatusNotRemovable(net NetID, status StatusID) error {
	return &Error{Kind: KindStatusNotRemovable, Net: net, Status: status}
}

func errRelationConstraintNotSatisfied(net NetID, task TaskID) error {
	return &Error{Kind: KindRelationConstraintNotSatisfied, Net: net, Task: task}
}

func errCycleNotAllowed(net NetID) error {
	return &Error{Kind: KindCycleNotAllowed, Net: net}
}

// errRelationNotFound is unused by any command in the default precondition
// table (RemoveRelation is intentionally idempotent), but is kept for
// hosts that want a stricter wrapper around RemoveRelation.
func errRelationNotFound(net NetID, from, to TaskID) error { //nolint:unused
	return &Error{Kind: KindRelationNotFound, Net: net, From: from, To: to}
}
