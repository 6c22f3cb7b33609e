package bootstrap

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"wanderbook/internal/pkg/config"
)

var LoggerModule = fx.Module("logger",
	fx.Invoke(SetupLogger),
)

// SetupLogger installs the process-wide slog handler. Timestamps are
// rendered in the configured timezone so logs line up with local operations.
func SetupLogger(cfg config.Config) {
	loc := time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset)

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(loc).Format(cfg.Log.TimeFormat))
				}
			}
			return a
		},
	})

	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
