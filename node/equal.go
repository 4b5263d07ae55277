package node

// AttributeEquals reports whether other has the same back and front
// references (by identity) and an equal payload (by value). It is false when
// other is nil or not a node.
func (n *Node) AttributeEquals(other *Node) bool {
	if !n.valid() || !other.valid() {
		return false
	}
	return n.back == other.back &&
		n.front == other.front &&
		n.data.Equal(other.data)
}

// IdentityEquals reports whether other is this exact node.
func (n *Node) IdentityEquals(other *Node) bool {
	return other != nil && n == other
}
