// Package diagram draws a node as two lines of text.
//
// The upper line is the node label between pipes, followed by a forward arrow
// when the node has a front attachment. The lower line is the payload text,
// centered in a fixed-width body between pipes, preceded by a backward arrow
// when the node has a back attachment. Whichever line lacks an arrow on a
// given side gets three spaces there instead, so both lines line up:
//
//	   | Node:1a2b3c4d |-->
//	<--|     data: test_symbol      |
//
// Output depends only on the label, the two attachment flags and the payload
// text.
package diagram

import (
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	BackArrow  = "<--"
	FrontArrow = "-->"
	Pipe       = "|"

	// Pipes plus the single space inside each.
	framing = 4

	dataPrefix = "data: "
)

var arrowPadding = strings.Repeat(" ", utf8.RuneCountInString(FrontArrow))

// Subject is what the renderer needs from a node.
type Subject interface {
	Label() string
	BackAttached() bool
	FrontAttached() bool
	DataText() string
}

// Renderer draws Subjects according to a Config.
type Renderer struct {
	cfg   Config
	arrow func(a ...any) string
	pipe  func(a ...any) string
}

// New returns a renderer for cfg. A non-positive MaxBodyWidth falls back to
// DefaultMaxBodyWidth.
func New(cfg Config) *Renderer {
	if cfg.MaxBodyWidth <= 0 {
		cfg.MaxBodyWidth = DefaultMaxBodyWidth
	}
	r := &Renderer{cfg: cfg, arrow: plain, pipe: plain}
	if cfg.Color {
		arrow := color.New(color.FgCyan, color.Bold)
		arrow.EnableColor()
		pipe := color.New(color.FgHiBlack)
		pipe.EnableColor()
		r.arrow = arrow.SprintFunc()
		r.pipe = pipe.SprintFunc()
	}
	return r
}

// Default renders with DefaultConfig.
func Default() *Renderer {
	return New(DefaultConfig())
}

func plain(a ...any) string {
	return a[0].(string)
}

// Config returns the effective configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render returns upper + "\n" + lower.
func (r *Renderer) Render(s Subject) string {
	upper := r.Upper(s.Label())
	lower := r.Lower(s.DataText())

	if s.BackAttached() {
		upper = arrowPadding + upper
		lower = r.arrow(BackArrow) + lower
	}
	if s.FrontAttached() {
		upper += r.arrow(FrontArrow)
		lower += arrowPadding
	}
	return upper + "\n" + lower
}

// Upper returns the arrowless upper line for label.
func (r *Renderer) Upper(label string) string {
	return r.pipe(Pipe) + " " + label + " " + r.pipe(Pipe)
}

// Lower returns the arrowless lower line for payload text. The body is
// centered in MaxBodyWidth runes; odd leftover space goes to the right.
// Text wider than the body is not truncated.
func (r *Renderer) Lower(text string) string {
	body := dataPrefix + text
	width := utf8.RuneCountInString(body)

	pad := (r.cfg.MaxBodyWidth - width) / 2
	if pad < 0 {
		pad = 0
	}
	spaces := strings.Repeat(" ", pad)
	body = spaces + body + spaces
	if framing+width+2*pad < r.ArrowlessWidth() {
		body += " "
	}
	return r.pipe(Pipe) + " " + body + " " + r.pipe(Pipe)
}

// ArrowlessWidth is the lower line width, in runes, for payload text that fits
// the body.
func (r *Renderer) ArrowlessWidth() int {
	return r.cfg.MaxBodyWidth + framing
}
