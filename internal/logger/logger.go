package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger: JSON lines on stdout in production,
// human-readable console output on stderr for any other env.
func Init(env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "production" {
		log.Logger = New(env, os.Stdout)
		return
	}
	log.Logger = New(env, os.Stderr)
}

func New(env string, w io.Writer) zerolog.Logger {
	if env == "production" {
		return zerolog.New(w).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}).
		With().Timestamp().Caller().Logger()
}

// SetLevel applies a level name such as "debug" or "warn". Unknown names keep info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		log.Warn().Str("level", level).Msg("Unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
