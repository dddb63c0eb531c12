package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type loggerKey struct{}

// newLogger builds the diagnostic logger. User-facing output never goes
// through it; it only carries debug traces and warnings.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("component", "mealbook")
}

func withLogger(ctx context.Context, l *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom returns the logger attached to the command's context, or a
// discarding logger when none was set (e.g. when run* functions are called
// directly from tests).
func loggerFrom(cmd *cobra.Command) *slog.Logger {
	if cmd != nil {
		if ctx := cmd.Context(); ctx != nil {
			if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
				return l
			}
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
