// Package node provides a doubly-linked Node: an optional back reference, an
// optional front reference and a payload value.
//
// # Construction and validation
//
// Nodes are created with New. A nil back or front means "unattached"; a
// non-nil *Node that was not produced by New is not a node and is rejected
// with an *AttachmentError. The payload is checked by the node's
// payload.Validator (payload.Default unless WithValidator is given) and a
// rejection yields a *PayloadError.
//
//	lone, err := node.New(nil, payload.Sym("test_symbol"), nil)
//	head, err := node.New(nil, payload.Int(1), lone)
//
// # Mutation
//
// AttachBack, AttachFront, DetachBack, DetachFront, SetData and Substitute
// are atomic: they either apply fully or return an error and leave the node
// untouched. Every mutator passes through one guard that rejects frozen nodes
// with a *FrozenMutationError. Freeze is one-way.
//
// # Aliasing
//
// Back and Front return the neighbor itself, not a copy. Linking a node from
// two places, or shallow cloning, shares neighbors on purpose: a change made
// to a neighbor is visible from every node that references it. CloneDeepFrozen
// exists to break that sharing.
//
// # Equality
//
// AttributeEquals compares back and front by identity and the payload by
// value. Identity comparison of neighbors keeps the check finite on cyclic
// back/front structures. IdentityEquals is pointer identity, so it is false
// for any clone.
//
// # Kinds
//
// A node's Kind is derived from which sides are attached:
//
//	back    front   kind
//	absent  absent  lone
//	absent  present base
//	present absent  pioneer
//	present present common
//
// # Memory
//
// Back and front may form cycles (a.front == b, b.back == a). The Go garbage
// collector traces such cycles, so neighbors are plain pointers and no
// weak-reference or arena scheme is needed.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Callers sharing nodes across
// goroutines must synchronize access themselves or hand each goroutine its
// own CloneDeepFrozen copy.
package node
