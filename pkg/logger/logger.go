package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/lumberjack.v2"
)

type Options struct {
	Level string
	// File enables a rotated log file next to stdout when set.
	File string
}

type Logger struct {
	base  zerolog.Logger
	info  *zerolog.Logger
	error *zerolog.Logger
	warn  *zerolog.Logger
	debug *zerolog.Logger
}

func New() *Logger {
	return NewWithOptions(Options{Level: "info"})
}

func NewWithOptions(opts Options) *Logger {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = zerolog.MultiLevelWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}

	base := zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()

	info := base.With().Str("level_name", "INFO").Logger()
	errl := base.With().Str("level_name", "ERROR").Logger()
	warn := base.With().Str("level_name", "WARN").Logger()
	debug := base.With().Str("level_name", "DEBUG").Logger()

	return &Logger{
		base:  base,
		info:  &info,
		error: &errl,
		warn:  &warn,
		debug: &debug,
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info.Info().Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error.Error().Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn.Warn().Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.debug.Debug().Msg(fmt.Sprintf(format, v...))
}

// With returns a child logger that tags every line with the component name.
func (l *Logger) With(component string) *Logger {
	base := l.base.With().Str("component", component).Logger()
	info := l.info.With().Str("component", component).Logger()
	errl := l.error.With().Str("component", component).Logger()
	warn := l.warn.With().Str("component", component).Logger()
	debug := l.debug.With().Str("component", component).Logger()

	return &Logger{
		base:  base,
		info:  &info,
		error: &errl,
		warn:  &warn,
		debug: &debug,
	}
}
