package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tailored-agentic-units/linknode/observability"
)

type captureObserver struct {
	events *[]observability.Event
}

func (c *captureObserver) OnEvent(ctx context.Context, event observability.Event) {
	*c.events = append(*c.events, event)
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		name  string
		level observability.Level
		want  string
	}{
		{name: "trace range", level: 1, want: "TRACE"},
		{name: "verbose", level: observability.LevelVerbose, want: "DEBUG"},
		{name: "info", level: observability.LevelInfo, want: "INFO"},
		{name: "warning", level: observability.LevelWarning, want: "WARN"},
		{name: "error", level: observability.LevelError, want: "ERROR"},
		{name: "fatal range", level: 21, want: "FATAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level observability.Level
		want  slog.Level
	}{
		{observability.LevelVerbose, slog.LevelDebug},
		{observability.LevelInfo, slog.LevelInfo},
		{observability.LevelWarning, slog.LevelWarn},
		{observability.LevelError, slog.LevelError},
	}

	for _, tt := range tests {
		if got := tt.level.SlogLevel(); got != tt.want {
			t.Errorf("Level(%d).SlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMultiObserver(t *testing.T) {
	var first, second []observability.Event
	multi := observability.NewMultiObserver(
		nil,
		&captureObserver{events: &first},
		nil,
		&captureObserver{events: &second},
	)

	if multi.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (nil observers skipped)", multi.Len())
	}

	multi.OnEvent(context.Background(), observability.Event{
		Type:  "node.attach",
		Level: observability.LevelVerbose,
	})

	if len(first) != 1 || len(second) != 1 {
		t.Errorf("got %d and %d events, want 1 each", len(first), len(second))
	}
}

func TestObserverFunc(t *testing.T) {
	called := false
	obs := observability.ObserverFunc(func(ctx context.Context, e observability.Event) {
		called = e.Type == "node.freeze"
	})

	obs.OnEvent(context.Background(), observability.Event{Type: "node.freeze"})

	if !called {
		t.Error("ObserverFunc did not receive the event")
	}
}

func TestSlogObserver_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     observability.Level
		minLevel  slog.Level
		expectLog bool
	}{
		{name: "verbose at debug", level: observability.LevelVerbose, minLevel: slog.LevelDebug, expectLog: true},
		{name: "verbose at info", level: observability.LevelVerbose, minLevel: slog.LevelInfo, expectLog: false},
		{name: "warning at info", level: observability.LevelWarning, minLevel: slog.LevelInfo, expectLog: true},
		{name: "warning at error", level: observability.LevelWarning, minLevel: slog.LevelError, expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: tt.minLevel}))

			observability.NewSlogObserver(logger).OnEvent(context.Background(), observability.Event{
				Type:      "node.reject",
				Level:     tt.level,
				Timestamp: time.Now(),
				Source:    "node",
			})

			if got := buf.Len() > 0; got != tt.expectLog {
				t.Errorf("logged = %v, want %v (buf: %q)", got, tt.expectLog, buf.String())
			}
		})
	}
}

func TestSlogObserver_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	observability.NewSlogObserver(logger).OnEvent(context.Background(), observability.Event{
		Type:   "node.attach",
		Level:  observability.LevelInfo,
		Source: "node",
		Data:   map[string]any{"side": "front", "node": "Node:1a2b3c4d"},
	})

	out := buf.String()
	for _, want := range []string{"msg=node.attach", "source=node", "node=Node:1a2b3c4d", "side=front"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
	if strings.Index(out, "node=Node") > strings.Index(out, "side=front") {
		t.Errorf("data attributes not sorted: %s", out)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"noop", "slog"} {
		if _, err := observability.GetObserver(name); err != nil {
			t.Errorf("GetObserver(%q) error = %v", name, err)
		}
	}
	if _, err := observability.GetObserver("missing"); err == nil {
		t.Error("GetObserver(missing) succeeded, want error")
	}

	var events []observability.Event
	observability.RegisterObserver("capture", &captureObserver{events: &events})

	obs, err := observability.GetObserver("capture")
	if err != nil {
		t.Fatalf("GetObserver(capture) error = %v", err)
	}
	obs.OnEvent(context.Background(), observability.Event{Type: "node.create"})
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}

	names := observability.ObserverNames()
	found := false
	for _, n := range names {
		found = found || n == "capture"
	}
	if !found {
		t.Errorf("ObserverNames() = %v, missing capture", names)
	}
}

func TestMetricsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetricsObserver(reg)
	if err != nil {
		t.Fatalf("NewMetricsObserver() error = %v", err)
	}

	ctx := context.Background()
	m.OnEvent(ctx, observability.Event{Type: "node.attach", Level: observability.LevelVerbose})
	m.OnEvent(ctx, observability.Event{Type: "node.attach", Level: observability.LevelVerbose})
	m.OnEvent(ctx, observability.Event{
		Type:  "node.reject",
		Level: observability.LevelWarning,
		Data:  map[string]any{"op": "attach_back"},
	})

	if got := testutil.ToFloat64(m.EventsTotal.WithLabelValues("node.attach", "DEBUG")); got != 2 {
		t.Errorf("attach events = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RejectionsTotal.WithLabelValues("attach_back")); got != 1 {
		t.Errorf("attach_back rejections = %v, want 1", got)
	}
}

func TestMetricsObserver_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := observability.NewMetricsObserver(reg); err != nil {
		t.Fatalf("first registration error = %v", err)
	}
	if _, err := observability.NewMetricsObserver(reg); err == nil {
		t.Error("second registration succeeded, want error")
	}
}
