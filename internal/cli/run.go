package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/henri123lemoine/plant-haiku/internal/config"
	"github.com/henri123lemoine/plant-haiku/internal/corpus"
	"github.com/henri123lemoine/plant-haiku/internal/debug"
	"github.com/henri123lemoine/plant-haiku/internal/haiku"
	"github.com/henri123lemoine/plant-haiku/internal/host"
	"github.com/henri123lemoine/plant-haiku/internal/present"
)

// ErrNoMatch is returned when --match leaves no haikus to choose from.
var ErrNoMatch = errors.New("no haiku matches")

// Options are the command-line settings for one run.
type Options struct {
	ConfigPath string
	Plain      bool
	Widget     bool
	Match      string
	Debug      bool

	// Seed makes the choice reproducible when HasSeed is set.
	Seed    uint64
	HasSeed bool

	// Corpus overrides the built-in corpus. Tests use it.
	Corpus *corpus.Corpus
}

// Run generates one haiku and presents it on stdout or the detected host.
func Run(ctx context.Context, opts Options, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(stderr, "Warning: %s\n", w)
	}

	if opts.Debug {
		if err := debug.Enable(cfg.DebugLogPath()); err != nil {
			fmt.Fprintf(stderr, "Warning: debug logging unavailable: %v\n", err)
		}
		defer debug.Close()
	}
	defer debug.Timed("run")()

	c := corpus.Default()
	if opts.Corpus != nil {
		c = *opts.Corpus
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	if opts.Match != "" {
		c = c.Filter(opts.Match)
		if c.Empty() {
			return fmt.Errorf("%w %q", ErrNoMatch, opts.Match)
		}
		debug.Log("match %q left %d haikus", opts.Match, len(c.Haikus))
	}

	src := haiku.RandomSource()
	if opts.HasSeed {
		src = haiku.NewSource(opts.Seed)
		debug.Log("using seed %d", opts.Seed)
	}

	p, err := haiku.Generate(src, c)
	if err != nil {
		return err
	}
	debug.Log("selected %q / %q", p.Title, p.Line1)

	out, _ := stdout.(*os.File)
	h, ok := host.Detect(host.DetectOptions{
		Out:        out,
		ForcePlain: opts.Plain,
		Widget:     opts.Widget,
		Terminal: host.TerminalOptions{
			ScriptName:        cfg.General.ScriptName,
			Scheme:            cfg.General.URLScheme,
			WidgetPath:        cfg.Widget.Path,
			NotifyMultiplexer: cfg.Widget.NotifyMultiplexer,
			Theme:             cfg.Theme(),
			Rerun: func() (haiku.Presentation, error) {
				return haiku.Generate(src, c)
			},
		},
	})

	return present.Choose(h, ok, stdout, cfg.General.URLScheme).Present(ctx, p)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
