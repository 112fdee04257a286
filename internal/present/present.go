// Package present renders a Presentation through whichever presenter the
// environment supports.
package present

import (
	"context"
	"io"

	"github.com/henri123lemoine/plant-haiku/internal/debug"
	"github.com/henri123lemoine/plant-haiku/internal/haiku"
	"github.com/henri123lemoine/plant-haiku/internal/host"
	"github.com/henri123lemoine/plant-haiku/internal/ui"
)

// Presenter displays a presentation.
type Presenter interface {
	Present(ctx context.Context, p haiku.Presentation) error
}

// Graphical presents on a graphical host.
type Graphical struct {
	Host   host.Host
	Scheme string
}

// Present builds the panel, attaches a re-invocation reference when the
// host can re-run scripts, and hands the panel to the host. Host errors
// are returned unchanged. Complete is always called.
func (g Graphical) Present(ctx context.Context, p haiku.Presentation) error {
	defer g.Host.Complete()

	panel := ui.Panel{Presentation: p}
	if name, ok := g.Host.ScriptName(); ok {
		scheme := host.SchemeOrDefault(g.Scheme)
		if g.Scheme != "" && scheme != g.Scheme {
			debug.Warn("invalid reference scheme, using default", "scheme", g.Scheme, "default", scheme)
		}
		panel.URL = host.RunURL(scheme, name)
	} else {
		debug.Log("host has no script name, panel is not tappable")
	}

	if g.Host.RunsInWidget() {
		return g.Host.SetWidget(panel)
	}
	return g.Host.PresentSmall(ctx, panel)
}

// Text writes the plain ruled block.
type Text struct {
	W io.Writer
}

// Present implements Presenter.
func (t Text) Present(_ context.Context, p haiku.Presentation) error {
	_, err := io.WriteString(t.W, ui.RenderText(p))
	return err
}

// Choose returns Graphical when a host is available and Text otherwise.
func Choose(h host.Host, ok bool, w io.Writer, scheme string) Presenter {
	if ok && h != nil {
		debug.Log("presenting graphically (widget=%v)", h.RunsInWidget())
		return Graphical{Host: h, Scheme: scheme}
	}
	debug.Log("presenting as text")
	return Text{W: w}
}
