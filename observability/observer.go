// Package observability carries node lifecycle events to logging and metrics
// sinks. Levels follow OpenTelemetry severity numbers so a sink can forward
// them to a collector without translation.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is an event severity in OTel SeverityNumber terms.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG (5-8)
	LevelInfo    Level = 9  // OTel INFO (9-12)
	LevelWarning Level = 13 // OTel WARN (13-16)
	LevelError   Level = 17 // OTel ERROR (17-20)
)

// String returns the OTel severity text.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps l onto the nearest slog level.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event. Packages declare their own constants
// ("node.attach", "node.reject", ...).
type EventType string

// Event is a single observation. Source is the emitting component and Data
// holds flat attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx context.Context, event Event)

func (f ObserverFunc) OnEvent(ctx context.Context, event Event) {
	f(ctx, event)
}
