package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	pkgctx "github.com/emtionre/satisfaction-service/internal/pkg/context"
)

var Log zerolog.Logger

// Init bootstraps from the raw environment so config errors can be logged.
// Call InitWith once config is loaded.
func Init() {
	InitWithWriter(os.Stdout)
}

func InitWithWriter(w io.Writer) {
	InitWithConfig(w, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Getenv("LOG_CALLER") == "true")
}

func InitWith(level, format string, caller bool) {
	InitWithConfig(os.Stdout, level, format, caller)
}

// InitWithConfig installs the global zerolog logger. format is "json" or
// "console"; an unknown level falls back to info.
func InitWithConfig(w io.Writer, level, format string, caller bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if format == "json" {
		l = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(lvl)
	}
	if caller {
		l = l.With().Caller().Logger()
	}

	Log = l
	zlog.Logger = l
}

// Ctx returns a logger with Request-ID context if available
func Ctx(ctx context.Context) *zerolog.Logger {
	reqID := pkgctx.GetRequestID(ctx)
	if reqID != "" {
		l := Log.With().Str("request_id", reqID).Logger()
		return &l
	}
	return &Log
}
