package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	// Output defaults to os.Stderr.
	Output io.Writer
	Level  slog.Level
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Setup installs the process-wide JSON logger. The returned func restores
// the discarding logger.
func Setup(cfg Config) func() {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: cfg.Level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
