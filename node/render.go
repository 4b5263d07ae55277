package node

import "github.com/tailored-agentic-units/linknode/diagram"

var _ diagram.Subject = (*Node)(nil)

// Render draws the node as a two-line diagram using its renderer.
func (n *Node) Render() string {
	if n.renderer == nil {
		return diagram.Default().Render(n)
	}
	return n.renderer.Render(n)
}
