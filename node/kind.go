package node

// Kind classifies a node by which sides are attached.
type Kind uint8

const (
	Lone    Kind = iota // neither side
	Base                // front only
	Pioneer             // back only
	Common              // both sides
)

func (k Kind) String() string {
	switch k {
	case Lone:
		return "lone"
	case Base:
		return "base"
	case Pioneer:
		return "pioneer"
	case Common:
		return "common"
	}
	return "unknown"
}

// Classify derives the node's kind from its current attachments.
func (n *Node) Classify() Kind {
	switch {
	case n.BothAttached():
		return Common
	case n.BackAttached():
		return Pioneer
	case n.FrontAttached():
		return Base
	}
	return Lone
}

// BackAttached reports whether the back slot holds a node.
func (n *Node) BackAttached() bool { return n.back != nil }

// FrontAttached reports whether the front slot holds a node.
func (n *Node) FrontAttached() bool { return n.front != nil }

// BothAttached reports whether both slots hold nodes.
func (n *Node) BothAttached() bool { return n.BackAttached() && n.FrontAttached() }

// NoAttachments reports whether both slots are empty.
func (n *Node) NoAttachments() bool { return !n.BackAttached() && !n.FrontAttached() }

// PayloadEmpty reports whether the payload is absent.
func (n *Node) PayloadEmpty() bool { return n.data.IsAbsent() }

// IsLone reports whether the node has no attachments.
func (n *Node) IsLone() bool { return n.NoAttachments() }

// IsBase reports whether the node has only a front attachment.
func (n *Node) IsBase() bool { return !n.BackAttached() && n.FrontAttached() }

// IsPioneer reports whether the node has only a back attachment.
func (n *Node) IsPioneer() bool { return n.BackAttached() && !n.FrontAttached() }

// IsCommon reports whether the node has both attachments.
func (n *Node) IsCommon() bool { return n.BothAttached() }
