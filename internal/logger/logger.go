package logger

import (
	"log/slog"
	"os"
)

// Init installs a JSON slog handler as the process-wide default logger.
// Everything logs through slog so output stays machine-parseable.
func Init(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})

	slog.SetDefault(slog.New(handler))
}
