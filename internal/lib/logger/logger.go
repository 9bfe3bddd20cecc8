package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger builds the process logger for the given environment.
// local writes human-readable text at debug level; dev and prod write
// JSON, prod at info level. When logPath points to a writable directory
// the output is duplicated into odooclient.log inside it.
func SetupLogger(env string, logPath string) *slog.Logger {
	out := io.Writer(os.Stdout)

	if logPath != "" {
		file, err := os.OpenFile(
			filepath.Join(logPath, "odooclient.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0o644,
		)
		if err == nil {
			out = io.MultiWriter(os.Stdout, file)
		}
	}

	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

// Notifier is the sink for records mirrored out of the log stream,
// typically a Telegram bot.
type Notifier interface {
	SendMessageWithLevel(msg string, level slog.Level)
}

// SetupTelegramHandler wraps the logger so records at or above minLevel
// are also pushed to the notifier.
func SetupTelegramHandler(log *slog.Logger, notifier Notifier, minLevel slog.Level) *slog.Logger {
	return slog.New(&teeHandler{
		next:     log.Handler(),
		notifier: notifier,
		minLevel: minLevel,
	})
}

type teeHandler struct {
	next     slog.Handler
	notifier Notifier
	minLevel slog.Level
	attrs    []slog.Attr
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel && h.notifier != nil {
		msg := r.Message
		attrs := append([]slog.Attr{}, h.attrs...)
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, a)
			return true
		})
		for _, a := range attrs {
			msg += "\n" + a.Key + ": " + a.Value.String()
		}
		h.notifier.SendMessageWithLevel(msg, r.Level)
	}
	return h.next.Handle(ctx, r)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{
		next:     h.next.WithAttrs(attrs),
		notifier: h.notifier,
		minLevel: h.minLevel,
		attrs:    append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{
		next:     h.next.WithGroup(name),
		notifier: h.notifier,
		minLevel: h.minLevel,
		attrs:    h.attrs,
	}
}
