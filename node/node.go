package node

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/linknode/diagram"
	"github.com/tailored-agentic-units/linknode/observability"
	"github.com/tailored-agentic-units/linknode/payload"
)

// Side names one of a node's two attachment slots.
type Side uint8

const (
	SideBack Side = iota
	SideFront
)

func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

type mode uint8

const (
	mutable mode = iota
	frozen
)

// Node is a doubly-linked element. Create nodes with New; mutators on a Node
// that was not (including the zero value) fail with ErrUninitialized.
type Node struct {
	id    uuid.UUID
	label string
	mode  mode

	back  *Node
	data  payload.Value
	front *Node

	validator payload.Validator
	observer  observability.Observer
	renderer  *diagram.Renderer
}

// Option configures a node at construction.
type Option func(*Node)

// WithValidator sets the payload validator. nil keeps payload.Default.
func WithValidator(v payload.Validator) Option {
	return func(n *Node) {
		if v != nil {
			n.validator = v
		}
	}
}

// WithObserver sets the event observer. nil keeps the no-op observer.
func WithObserver(o observability.Observer) Option {
	return func(n *Node) {
		if o != nil {
			n.observer = o
		}
	}
}

// WithLabel overrides the generated short label.
func WithLabel(label string) Option {
	return func(n *Node) {
		n.label = label
	}
}

// WithRenderer sets the diagram renderer. nil keeps diagram.Default.
func WithRenderer(r *diagram.Renderer) Option {
	return func(n *Node) {
		if r != nil {
			n.renderer = r
		}
	}
}

// New creates a node. back and front may be nil; any non-nil node must have
// been created by New. data must satisfy the validator. On error no node is
// returned.
func New(back *Node, data payload.Value, front *Node, opts ...Option) (*Node, error) {
	n := &Node{id: uuid.New()}
	for _, opt := range opts {
		opt(n)
	}
	n.setDefaults()

	if err := checkAttachment(SideBack, back, true); err != nil {
		n.reject(OpNew, err)
		return nil, err
	}
	if err := n.checkPayload(data); err != nil {
		n.reject(OpNew, err)
		return nil, err
	}
	if err := checkAttachment(SideFront, front, true); err != nil {
		n.reject(OpNew, err)
		return nil, err
	}

	n.back, n.data, n.front = back, data, front
	n.emit(EventNodeCreate, observability.LevelVerbose, map[string]any{
		"kind":    n.Classify().String(),
		"payload": data.Kind().String(),
	})
	return n, nil
}

// ID returns the node's unique identifier.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Label is the short name shown in diagrams: the WithLabel value, or "Node:"
// followed by the first eight hex digits of the ID.
func (n *Node) Label() string {
	if n.label != "" {
		return n.label
	}
	return "Node:" + n.id.String()[:8]
}

// String returns Label. Use Render for the diagram.
func (n *Node) String() string {
	return n.Label()
}

// Back returns the back neighbor or nil.
func (n *Node) Back() *Node {
	return n.back
}

// Front returns the front neighbor or nil.
func (n *Node) Front() *Node {
	return n.front
}

// Data returns the payload.
func (n *Node) Data() payload.Value {
	return n.data
}

// DataKind returns the payload's kind.
func (n *Node) DataKind() payload.Kind {
	return n.data.Kind()
}

// DataText is the payload as shown in diagrams.
func (n *Node) DataText() string {
	return n.data.String()
}

// Frozen reports whether the node rejects mutation.
func (n *Node) Frozen() bool {
	return n.mode == frozen
}

// Validator returns the payload validator in use.
func (n *Node) Validator() payload.Validator {
	return n.validator
}

func (n *Node) setDefaults() {
	if n.validator == nil {
		n.validator = payload.Default()
	}
	if n.observer == nil {
		n.observer = observability.NoOpObserver{}
	}
	if n.renderer == nil {
		n.renderer = diagram.Default()
	}
}

func (n *Node) valid() bool {
	return n != nil && n.id != uuid.Nil
}

func checkAttachment(side Side, ref *Node, allowAbsent bool) error {
	if ref == nil && allowAbsent {
		return nil
	}
	if !ref.valid() {
		return &AttachmentError{Side: side, Value: ref}
	}
	return nil
}

func (n *Node) checkPayload(v payload.Value) error {
	if n.validator.Accepts(v) {
		return nil
	}
	return &PayloadError{Value: v, Reason: payload.Reason(n.validator, v)}
}

func (n *Node) emit(t observability.EventType, level observability.Level, data map[string]any) {
	if n.observer == nil {
		return
	}
	if data == nil {
		data = make(map[string]any, 1)
	}
	data["node"] = n.Label()
	n.observer.OnEvent(context.Background(), observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    eventSource,
		Data:      data,
	})
}

func (n *Node) reject(op string, err error) {
	n.emit(EventNodeReject, observability.LevelWarning, map[string]any{
		"op":    op,
		"error": err.Error(),
	})
}
