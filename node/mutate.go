package node

import (
	"fmt"

	"github.com/tailored-agentic-units/linknode/observability"
	"github.com/tailored-agentic-units/linknode/payload"
)

// mutate is the single entry point for every state change. It refuses
// uninitialized and frozen nodes before apply runs; apply must validate
// everything before assigning.
func (n *Node) mutate(op string, apply func() error) error {
	if !n.valid() {
		return fmt.Errorf("%w: %s", ErrUninitialized, op)
	}
	if n.mode == frozen {
		err := &FrozenMutationError{Op: op, Label: n.Label()}
		n.reject(op, err)
		return err
	}
	if err := apply(); err != nil {
		n.reject(op, err)
		return err
	}
	return nil
}

// AttachBack makes other the back neighbor. other must be a node; use
// DetachBack to clear the slot.
func (n *Node) AttachBack(other *Node) error {
	return n.attach(OpAttachBack, SideBack, other)
}

// AttachFront makes other the front neighbor. other must be a node; use
// DetachFront to clear the slot.
func (n *Node) AttachFront(other *Node) error {
	return n.attach(OpAttachFront, SideFront, other)
}

func (n *Node) attach(op string, side Side, other *Node) error {
	return n.mutate(op, func() error {
		if err := checkAttachment(side, other, false); err != nil {
			return err
		}
		n.setNeighbor(side, other)
		n.emit(EventNodeAttach, observability.LevelVerbose, map[string]any{
			"side":     side.String(),
			"neighbor": other.Label(),
			"kind":     n.Classify().String(),
		})
		return nil
	})
}

// DetachBack clears the back slot. It fails only on frozen nodes.
func (n *Node) DetachBack() error {
	return n.detach(OpDetachBack, SideBack)
}

// DetachFront clears the front slot. It fails only on frozen nodes.
func (n *Node) DetachFront() error {
	return n.detach(OpDetachFront, SideFront)
}

func (n *Node) detach(op string, side Side) error {
	return n.mutate(op, func() error {
		n.setNeighbor(side, nil)
		n.emit(EventNodeDetach, observability.LevelVerbose, map[string]any{
			"side": side.String(),
			"kind": n.Classify().String(),
		})
		return nil
	})
}

// SetData replaces the payload after validating it.
func (n *Node) SetData(v payload.Value) error {
	return n.mutate(OpSetData, func() error {
		if err := n.checkPayload(v); err != nil {
			return err
		}
		n.data = v
		n.emit(EventNodeData, observability.LevelVerbose, map[string]any{
			"payload": v.Kind().String(),
		})
		return nil
	})
}

// Substitute copies back, data and front from other into n. The payload is
// re-validated with n's validator. n keeps its identity, label and options.
func (n *Node) Substitute(other *Node) error {
	return n.mutate(OpSubstitute, func() error {
		if !other.valid() {
			return &InvalidSubstitutionError{Value: other}
		}
		if err := checkAttachment(SideBack, other.back, true); err != nil {
			return err
		}
		if err := n.checkPayload(other.data); err != nil {
			return err
		}
		if err := checkAttachment(SideFront, other.front, true); err != nil {
			return err
		}

		n.back, n.data, n.front = other.back, other.data, other.front
		n.emit(EventNodeSubstitute, observability.LevelVerbose, map[string]any{
			"from": other.Label(),
			"kind": n.Classify().String(),
		})
		return nil
	})
}

// Freeze makes n permanently immutable. Freezing a frozen node does nothing.
func (n *Node) Freeze() {
	if !n.valid() || n.mode == frozen {
		return
	}
	n.mode = frozen
	n.emit(EventNodeFreeze, observability.LevelVerbose, nil)
}

func (n *Node) neighbor(side Side) *Node {
	if side == SideBack {
		return n.back
	}
	return n.front
}

func (n *Node) setNeighbor(side Side, other *Node) {
	if side == SideBack {
		n.back = other
	} else {
		n.front = other
	}
}
