package node

import "github.com/tailored-agentic-units/linknode/observability"

const eventSource = "node"

const (
	EventNodeCreate     observability.EventType = "node.create"
	EventNodeAttach     observability.EventType = "node.attach"
	EventNodeDetach     observability.EventType = "node.detach"
	EventNodeData       observability.EventType = "node.data"
	EventNodeSubstitute observability.EventType = "node.substitute"
	EventNodeClone      observability.EventType = "node.clone"
	EventNodeFreeze     observability.EventType = "node.freeze"
	EventNodeReject     observability.EventType = "node.reject"
)

// Operation names carried in the "op" attribute of reject events and in
// FrozenMutationError.Op.
const (
	OpNew         = "new"
	OpAttachBack  = "attach_back"
	OpAttachFront = "attach_front"
	OpDetachBack  = "detach_back"
	OpDetachFront = "detach_front"
	OpSetData     = "set_data"
	OpSubstitute  = "substitute"
)
