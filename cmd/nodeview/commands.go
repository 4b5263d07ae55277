package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/linknode/config"
	"github.com/tailored-agentic-units/linknode/node"
	"github.com/tailored-agentic-units/linknode/observability"
	"github.com/tailored-agentic-units/linknode/payload"
)

type rootOptions struct {
	configFile string
	verbose    bool
	metrics    bool
	color      string

	registry *prometheus.Registry

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "nodeview",
		Short:         "Build doubly-linked nodes and print their diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.writeMetrics()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path to config file (JSON or YAML)")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log node events to stderr")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print node event counters to stderr after the run")
	flags.StringVar(&opts.color, "color", "auto", "Colorize diagrams: auto, always or never")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newClassifyCmd(opts))
	root.AddCommand(newChainCmd(opts))
	return root
}

// nodeOptions loads config, applies flag overrides and returns options for
// every node the command builds.
func (o *rootOptions) nodeOptions() ([]node.Option, error) {
	cfg := config.DefaultConfig()
	if o.configFile != "" {
		loaded, err := config.LoadConfig(o.configFile)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	switch o.color {
	case "always":
		cfg.Diagram.Color = true
	case "never":
		cfg.Diagram.Color = false
	case "auto":
		cfg.Diagram.Color = cfg.Diagram.Color || isTerminal(o.stdout)
	default:
		return nil, fmt.Errorf("invalid --color %q: want auto, always or never", o.color)
	}

	var extra []observability.Observer
	if o.verbose {
		logger := slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		extra = append(extra, observability.NewSlogObserver(logger))
	}
	if o.metrics {
		o.registry = prometheus.NewRegistry()
		m, err := observability.NewMetricsObserver(o.registry)
		if err != nil {
			return nil, err
		}
		extra = append(extra, m)
	}

	if len(extra) > 0 {
		name := cfg.Observer
		if name == "" {
			name = "noop"
		}
		base, err := observability.GetObserver(name)
		if err != nil {
			return nil, fmt.Errorf("observer config: %w", err)
		}
		all := append([]observability.Observer{base}, extra...)
		observability.RegisterObserver("nodeview", observability.NewMultiObserver(all...))
		cfg.Observer = "nodeview"
	}

	return cfg.NodeOptions()
}

// writeMetrics prints the counters gathered during the run in Prometheus text
// format. It does nothing unless --metrics was given.
func (o *rootOptions) writeMetrics() error {
	if o.registry == nil {
		return nil
	}
	families, err := o.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(o.stderr, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nodeFlags struct {
	data  string
	label string
	back  bool
	front bool
}

func (f *nodeFlags) register(cmd *cobra.Command, withData bool) {
	if withData {
		cmd.Flags().StringVar(&f.data, "data", "absent", "Payload as kind:value (e.g. symbol:test_symbol, number:3.14)")
		cmd.Flags().StringVar(&f.label, "label", "", "Label shown in the diagram")
	}
	cmd.Flags().BoolVar(&f.back, "back", false, "Attach a back neighbor")
	cmd.Flags().BoolVar(&f.front, "front", false, "Attach a front neighbor")
}

// build creates the node described by the flags, with placeholder neighbors
// for the attached sides. Placeholders carry an absent payload, so they skip
// the configured payload limits and use the domain validator.
func (f *nodeFlags) build(opts []node.Option) (*node.Node, error) {
	data, err := payload.Parse(f.data)
	if err != nil {
		return nil, err
	}

	var back, front *node.Node
	if f.back {
		if back, err = placeholder(opts); err != nil {
			return nil, err
		}
	}
	if f.front {
		if front, err = placeholder(opts); err != nil {
			return nil, err
		}
	}

	subject := append([]node.Option(nil), opts...)
	if f.label != "" {
		subject = append(subject, node.WithLabel(f.label))
	}
	return node.New(back, data, front, subject...)
}

func placeholder(opts []node.Option) (*node.Node, error) {
	return node.New(nil, payload.Absent(), nil, structural(opts)...)
}

// structural returns opts with the payload validator reset to the domain
// default, for nodes that exist only for their attachments.
func structural(opts []node.Option) []node.Option {
	out := make([]node.Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, node.WithValidator(payload.Default()))
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	f := &nodeFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the diagram of a single node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.nodeOptions()
			if err != nil {
				return err
			}
			n, err := f.build(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(root.stdout, n.Render())
			return nil
		},
	}
	f.register(cmd, true)
	return cmd
}

func newClassifyCmd(root *rootOptions) *cobra.Command {
	f := &nodeFlags{data: "absent"}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the kind of a node with the given attachments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.nodeOptions()
			if err != nil {
				return err
			}
			n, err := f.build(structural(opts))
			if err != nil {
				return err
			}
			fmt.Fprintln(root.stdout, n.Classify())
			return nil
		},
	}
	f.register(cmd, false)
	return cmd
}

func newChainCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <payload>...",
		Short: "Link one node per payload back to front and print each diagram",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.nodeOptions()
			if err != nil {
				return err
			}
			nodes, err := buildChain(args, opts)
			if err != nil {
				return err
			}
			for i, n := range nodes {
				if i > 0 {
					fmt.Fprintln(root.stdout)
				}
				fmt.Fprintln(root.stdout, n.Render())
			}
			return nil
		},
	}
}

// buildChain links nodes so that each one's front is the next and each
// one's back is the previous.
func buildChain(literals []string, opts []node.Option) ([]*node.Node, error) {
	nodes := make([]*node.Node, 0, len(literals))
	for i, lit := range literals {
		data, err := payload.Parse(lit)
		if err != nil {
			return nil, fmt.Errorf("payload %d: %w", i, err)
		}

		var prev *node.Node
		if i > 0 {
			prev = nodes[i-1]
		}
		n, err := node.New(prev, data, nil, append(opts, node.WithLabel(fmt.Sprintf("n%d", i)))...)
		if err != nil {
			return nil, fmt.Errorf("payload %d: %w", i, err)
		}
		if prev != nil {
			if err := prev.AttachFront(n); err != nil {
				return nil, err
			}
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
