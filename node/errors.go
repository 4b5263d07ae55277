package node

import (
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/linknode/payload"
)

// Sentinel errors. The typed errors below unwrap to these, so callers can
// test with errors.Is or inspect details with errors.As.
var (
	ErrAttachment          = errors.New("invalid attachment")
	ErrPayload             = errors.New("payload rejected")
	ErrInvalidSubstitution = errors.New("invalid substitution argument")
	ErrFrozen              = errors.New("node is frozen")
	ErrUninitialized       = errors.New("node not created by New")
)

// AttachmentError reports a back or front value that is neither absent nor a
// node.
type AttachmentError struct {
	Side  Side
	Value any
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("cannot attach %s: %s", e.Side, describe(e.Value))
}

func (e *AttachmentError) Unwrap() error {
	return ErrAttachment
}

// PayloadError reports a payload the validator refused. Reason carries the
// validator's explanation when it has one.
type PayloadError struct {
	Value  payload.Value
	Reason error
}

func (e *PayloadError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("invalid %s payload %q: %v", e.Value.Kind(), e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s payload %q", e.Value.Kind(), e.Value)
}

func (e *PayloadError) Unwrap() []error {
	if e.Reason != nil {
		return []error{ErrPayload, e.Reason}
	}
	return []error{ErrPayload}
}

// InvalidSubstitutionError reports a Substitute argument that is not a node.
type InvalidSubstitutionError struct {
	Value any
}

func (e *InvalidSubstitutionError) Error() string {
	return fmt.Sprintf("cannot substitute from %s", describe(e.Value))
}

func (e *InvalidSubstitutionError) Unwrap() error {
	return ErrInvalidSubstitution
}

// FrozenMutationError reports a mutator called on a frozen node.
type FrozenMutationError struct {
	Op    string
	Label string
}

func (e *FrozenMutationError) Error() string {
	return fmt.Sprintf("%s on frozen node %s", e.Op, e.Label)
}

func (e *FrozenMutationError) Unwrap() error {
	return ErrFrozen
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil is not a node"
	case *Node:
		if x == nil {
			return "nil is not a node"
		}
		return "uninitialized node (not created by New)"
	}
	return fmt.Sprintf("%T is not a node", v)
}
