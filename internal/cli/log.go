package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gfakit/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Merged 12 chains (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// newObserver reports graph events to l. Loads and rewrites are logged at
// debug level; failures are left to the caller, which returns them.
func newObserver(l *log.Logger) observability.Observer {
	return observability.Funcs{
		LoadStart: func(source string) {
			l.Debug("loading", "source", source)
		},
		LoadProgress: func(source string, lines int) {
			l.Debug("loading", "source", source, "lines", lines)
		},
		LoadComplete: func(source string, lines int, d time.Duration, err error) {
			if err == nil {
				l.Debug("loaded", "source", source, "lines", lines, "took", d.Round(time.Millisecond))
			}
		},
		Validate: func(records int, d time.Duration, err error) {
			l.Debug("validated", "records", records, "ok", err == nil, "took", d.Round(time.Millisecond))
		},
		Transform: func(name, detail string, d time.Duration, err error) {
			if err != nil {
				l.Debug(name+" failed", "detail", detail, "err", err)
				return
			}
			l.Debug(name, "detail", detail, "took", d.Round(time.Millisecond))
		},
	}
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
