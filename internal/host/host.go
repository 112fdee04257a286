// Package host abstracts the environment a panel is displayed in.
package host

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/henri123lemoine/plant-haiku/internal/ui"
)

// Host is a graphical environment able to show a panel.
type Host interface {
	// ScriptName returns the name the host knows this program by.
	// ok is false when the host cannot re-invoke scripts.
	ScriptName() (name string, ok bool)

	// RunsInWidget reports whether the host is rendering a widget-sized
	// panel rather than an interactive preview.
	RunsInWidget() bool

	// SetWidget registers panel as the widget to display.
	SetWidget(panel ui.Panel) error

	// PresentSmall shows panel and blocks until the host is done with it.
	// Cancellation is best-effort and defined by the host.
	PresentSmall(ctx context.Context, panel ui.Panel) error

	// Complete tells the host the run is finished.
	Complete()
}

// DetectOptions controls the one-time capability check.
type DetectOptions struct {
	// Out is where interactive output would go.
	Out *os.File

	// ForcePlain disables graphical output.
	ForcePlain bool

	// Widget requests widget mode, which does not need a terminal.
	Widget bool

	// Terminal configures the host returned when one is available.
	Terminal TerminalOptions
}

// Detect returns the graphical host for this process, if there is one.
func Detect(opts DetectOptions) (Host, bool) {
	if opts.ForcePlain {
		return nil, false
	}

	t := opts.Terminal
	t.Widget = opts.Widget
	if opts.Widget {
		return NewTerminal(t), true
	}

	if opts.Out == nil || !IsTerminal(opts.Out) {
		return nil, false
	}
	if t.Output == nil {
		t.Output = opts.Out
	}
	return NewTerminal(t), true
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
