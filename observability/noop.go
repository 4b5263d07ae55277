package observability

import "context"

// NoOpObserver drops every event. It is the default for nodes built without
// WithObserver.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}
