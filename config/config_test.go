package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tailored-agentic-units/linknode/config"
	"github.com/tailored-agentic-units/linknode/node"
	"github.com/tailored-agentic-units/linknode/payload"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Observer != "noop" {
		t.Errorf("got Observer %q, want noop", cfg.Observer)
	}
	if cfg.Diagram.MaxBodyWidth != 26 {
		t.Errorf("got Diagram.MaxBodyWidth %d, want 26", cfg.Diagram.MaxBodyWidth)
	}
	if cfg.Payload.MaxTextBytes != 4096 {
		t.Errorf("got Payload.MaxTextBytes %d, want 4096", cfg.Payload.MaxTextBytes)
	}
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Merge(&config.Config{})

	if cfg.Observer != "noop" || cfg.Diagram.MaxBodyWidth != 26 || cfg.Payload.MaxTextBytes != 4096 {
		t.Errorf("Merge(zero) changed defaults: %+v", cfg)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"observer": "slog",
		"payload": {"allowed_kinds": ["symbol", "number"], "max_text_bytes": 32},
		"diagram": {"max_body_width": 40}
	}`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Observer != "slog" {
		t.Errorf("got Observer %q, want slog", cfg.Observer)
	}
	if len(cfg.Payload.AllowedKinds) != 2 || cfg.Payload.MaxTextBytes != 32 {
		t.Errorf("got Payload %+v", cfg.Payload)
	}
	if cfg.Diagram.MaxBodyWidth != 40 {
		t.Errorf("got Diagram.MaxBodyWidth %d, want 40", cfg.Diagram.MaxBodyWidth)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
payload:
  require_payload: true
diagram:
  color: true
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.Payload.RequirePayload {
		t.Error("RequirePayload not loaded")
	}
	if !cfg.Diagram.Color {
		t.Error("Diagram.Color not loaded")
	}
	if cfg.Diagram.MaxBodyWidth != 26 || cfg.Observer != "noop" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := config.LoadConfig("/nonexistent/path/config.json"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := config.LoadConfig(writeFile(t, "bad.json", "{invalid}")); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := config.LoadConfig(writeFile(t, "bad.yml", "payload: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestNodeOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Payload.AllowedKinds = []string{"symbol"}
	cfg.Diagram.MaxBodyWidth = 10

	opts, err := cfg.NodeOptions()
	if err != nil {
		t.Fatalf("NodeOptions() error = %v", err)
	}

	n, err := node.New(nil, payload.Sym("ab"), nil, append(opts, node.WithLabel("n"))...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, want := n.Render(), "| n |\n|  data: ab  |"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if _, err := node.New(nil, payload.Int(1), nil, opts...); !errors.Is(err, node.ErrPayload) {
		t.Errorf("New(number) error = %v, want ErrPayload", err)
	}
}

func TestNodeOptions_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Observer = "missing"
	if _, err := cfg.NodeOptions(); err == nil {
		t.Error("expected error for unknown observer")
	}

	cfg = config.DefaultConfig()
	cfg.Payload.AllowedKinds = []string{"list"}
	if _, err := cfg.NodeOptions(); err == nil {
		t.Error("expected error for unknown payload kind")
	}
}
