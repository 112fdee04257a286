package host

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofrs/flock"

	"github.com/henri123lemoine/plant-haiku/internal/app"
	"github.com/henri123lemoine/plant-haiku/internal/debug"
	"github.com/henri123lemoine/plant-haiku/internal/haiku"
	"github.com/henri123lemoine/plant-haiku/internal/ui"
)

// TerminalOptions configures a Terminal host.
type TerminalOptions struct {
	// ScriptName is the name taps re-run. Empty disables re-invocation.
	ScriptName string

	// Scheme is the re-invocation reference scheme.
	Scheme string

	// Widget selects widget mode.
	Widget bool

	// WidgetPath is where SetWidget writes the panel. Empty uses
	// DefaultWidgetPath.
	WidgetPath string

	// NotifyMultiplexer refreshes the tmux status line after SetWidget.
	NotifyMultiplexer bool

	// Theme styles the panel.
	Theme ui.Theme

	// Rerun regenerates a presentation when a tap resolves to this script.
	Rerun func() (haiku.Presentation, error)

	// Output and Input are used by the preview program. Nil means the
	// process's stdout and stdin.
	Output io.Writer
	Input  io.Reader

	// ProgramOptions are appended to the preview program options.
	ProgramOptions []tea.ProgramOption
}

// Terminal is a Host backed by the user's terminal.
type Terminal struct {
	opts     TerminalOptions
	complete sync.Once
	done     bool
}

// NewTerminal creates a Terminal host.
func NewTerminal(opts TerminalOptions) *Terminal {
	if scheme := SchemeOrDefault(opts.Scheme); scheme != opts.Scheme {
		if opts.Scheme != "" {
			debug.Warn("invalid reference scheme, using default", "scheme", opts.Scheme, "default", scheme)
		}
		opts.Scheme = scheme
	}
	return &Terminal{opts: opts}
}

// DefaultScheme is the re-invocation scheme when none is configured.
const DefaultScheme = "haiku"

// DefaultWidgetPath returns the widget file path in the user cache dir.
func DefaultWidgetPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "plant-haiku", "widget.txt")
}

// ScriptName implements Host.
func (t *Terminal) ScriptName() (string, bool) {
	return t.opts.ScriptName, t.opts.ScriptName != ""
}

// RunsInWidget implements Host.
func (t *Terminal) RunsInWidget() bool {
	return t.opts.Widget
}

// WidgetPath returns the file SetWidget writes.
func (t *Terminal) WidgetPath() string {
	if t.opts.WidgetPath != "" {
		return t.opts.WidgetPath
	}
	return DefaultWidgetPath()
}

// SetWidget renders panel into the widget file for status bars and
// dashboards to pick up.
func (t *Terminal) SetWidget(panel ui.Panel) error {
	defer debug.Timed("set widget")()

	content := ui.Hyperlink(ui.RenderPanel(panel, t.opts.Theme), panel.URL) + "\n"
	path := t.WidgetPath()
	if err := writeWidgetFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write widget %s: %w", path, err)
	}
	debug.Log("widget written to %s", path)

	if t.opts.NotifyMultiplexer && DetectMultiplexer() == "tmux" {
		// The widget is already on disk; a stale status line is not fatal.
		if err := exec.Command("tmux", "refresh-client", "-S").Run(); err != nil {
			debug.Warn("tmux status refresh failed", "err", err)
		}
	}
	return nil
}

// writeWidgetFile replaces path atomically under an exclusive lock.
func writeWidgetFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// ReadWidget returns the current widget file contents under a shared lock.
func ReadWidget(path string) (string, error) {
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return "", err
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PresentSmall runs the preview until the user dismisses it or ctx ends.
func (t *Terminal) PresentSmall(ctx context.Context, panel ui.Panel) error {
	defer debug.Timed("present small")()

	model := app.New(panel, t.opts.Theme, t.resolve)

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if t.opts.Output != nil {
		opts = append(opts, tea.WithOutput(t.opts.Output))
	}
	if t.opts.Input != nil {
		opts = append(opts, tea.WithInput(t.opts.Input))
	}
	opts = append(opts, t.opts.ProgramOptions...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(app.Model); ok {
		if m.ShouldQuit() {
			debug.Log("preview dismissed after %d taps", m.Taps())
		} else {
			debug.Log("preview closed without a quit key after %d taps", m.Taps())
		}
	}
	return nil
}

// resolve follows a re-invocation reference. Only references to this
// script can be run.
func (t *Terminal) resolve(ref string) (ui.Panel, error) {
	name, err := ParseRunURL(ref, t.opts.Scheme)
	if err != nil {
		return ui.Panel{}, err
	}
	if self, ok := t.ScriptName(); !ok || name != self {
		return ui.Panel{}, fmt.Errorf("%w: unknown script %q", ErrBadReference, name)
	}
	if t.opts.Rerun == nil {
		return ui.Panel{}, fmt.Errorf("script %q cannot be re-run", name)
	}

	p, err := t.opts.Rerun()
	if err != nil {
		return ui.Panel{}, err
	}
	debug.Log("re-ran %s: %s", name, p.Title)
	return ui.Panel{Presentation: p, URL: ref}, nil
}

// Complete implements Host. Only the first call has an effect.
func (t *Terminal) Complete() {
	t.complete.Do(func() {
		t.done = true
		debug.Log("host run complete")
	})
}

// Completed reports whether Complete has been called.
func (t *Terminal) Completed() bool {
	return t.done
}

// DetectMultiplexer detects the terminal multiplexer environment.
func DetectMultiplexer() string {
	if os.Getenv("TMUX") != "" {
		return "tmux"
	}
	if os.Getenv("ZELLIJ") != "" {
		return "zellij"
	}
	return "generic"
}
