// Package logx configures the global zerolog logger.
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pricofy/prime-checker/internal/config"
)

// Init sets log.Logger from cfg. JSON lines go to stdout so CloudWatch can index them.
func Init(cfg config.LogConfig, environment string) {
	InitWithWriter(os.Stdout, cfg, environment)
}

// InitWithWriter is Init with an explicit output.
func InitWithWriter(w io.Writer, cfg config.LogConfig, environment string) {
	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: w}
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "prime-checker").
		Str("environment", environment).
		Logger()
}
