package sl

import (
	"log/slog"
)

// Err wraps an error into a uniform slog attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Module tags log records with the emitting module name.
func Module(name string) slog.Attr {
	return slog.Attr{
		Key:   "module",
		Value: slog.StringValue(name),
	}
}

// Secret logs a sensitive value in redacted form, keeping only enough
// of the tail to correlate records.
func Secret(key, value string) slog.Attr {
	masked := "****"
	if n := len(value); n > 4 {
		masked = "****" + value[n-4:]
	}
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(masked),
	}
}
