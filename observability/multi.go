package observability

import "context"

// MultiObserver forwards each event to every wrapped observer in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver wraps the given observers, skipping nils.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	m := &MultiObserver{observers: make([]Observer, 0, len(observers))}
	for _, o := range observers {
		if o == nil {
			continue
		}
		m.observers = append(m.observers, o)
	}
	return m
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, o := range m.observers {
		o.OnEvent(ctx, event)
	}
}

// Len reports how many observers receive events.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}
