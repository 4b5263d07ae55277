package node

import (
	"github.com/google/uuid"

	"github.com/tailored-agentic-units/linknode/observability"
)

// derive returns a fresh identity carrying n's payload and options. Custom
// labels are not inherited.
func (n *Node) derive() *Node {
	c := &Node{
		id:        uuid.New(),
		data:      n.data,
		validator: n.validator,
		observer:  n.observer,
		renderer:  n.renderer,
	}
	c.setDefaults()
	return c
}

// ShallowClone returns a new node with the same back and front references and
// the same payload. The clone is attribute-equal to n but not identical. A
// clone of a frozen node is frozen.
func (n *Node) ShallowClone() *Node {
	c := n.derive()
	c.back, c.front = n.back, n.front
	c.mode = n.mode

	n.emit(EventNodeClone, observability.LevelVerbose, map[string]any{
		"clone": c.Label(),
		"deep":  false,
	})
	return c
}

// CloneDeepFrozen returns a frozen copy of n whose neighbors are new frozen
// nodes rather than n's own neighbors.
//
// The back chain is copied by following back references only and the front
// chain by following front references only; each walk stops at nil or when
// it reaches a node it already copied, so directional cycles close on the
// copies. A copied neighbor's opposite-side reference still points at the
// original node. For a linked pair a <-> b, CloneDeepFrozen(a).Front().Back()
// is a, not the clone of a. The payload is shared, not copied.
func (n *Node) CloneDeepFrozen() *Node {
	c := n.derive()
	c.mode = frozen

	copied := 0
	for _, side := range []Side{SideBack, SideFront} {
		copied += n.cloneChain(c, side)
	}

	n.emit(EventNodeClone, observability.LevelVerbose, map[string]any{
		"clone":  c.Label(),
		"deep":   true,
		"copied": copied,
	})
	return c
}

// cloneChain walks from n along side, attaching a frozen copy of each node to
// the previous copy, starting at root (n's copy). It returns the number of
// neighbor copies made.
func (n *Node) cloneChain(root *Node, side Side) int {
	seen := map[*Node]*Node{n: root}
	prev := root
	count := 0

	for cur := n.neighbor(side); cur != nil; cur = cur.neighbor(side) {
		if dup, ok := seen[cur]; ok {
			prev.setNeighbor(side, dup)
			break
		}
		cc := cur.derive()
		cc.mode = frozen
		cc.back, cc.front = cur.back, cur.front
		seen[cur] = cc

		prev.setNeighbor(side, cc)
		prev = cc
		count++
	}
	return count
}
