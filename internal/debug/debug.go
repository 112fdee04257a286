package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	slogmulti "github.com/samber/slog-multi"
)

var (
	enabled bool
	logFile *os.File
	logger  = discardLogger()
	mu      sync.Mutex
)

// stderr is where warnings are echoed. Tests replace it.
var stderr io.Writer = os.Stderr

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})

	logFile = f
	logger = slog.New(slogmulti.Fanout(fileHandler, stderrHandler))
	enabled = true

	logger.Debug("debug logging enabled", "path", path)
	return nil
}

// Close closes the debug log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = discardLogger()
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// L returns the current logger. It discards everything while debugging
// is off.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	L().Debug(fmt.Sprintf(format, args...))
}

// Warn writes a warning. It reaches stderr as well as the log file.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log("%s started", name)

	return func() {
		L().Debug(name+" completed", "elapsed", time.Since(start))
	}
}
