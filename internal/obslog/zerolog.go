package obslog

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// zerologLogger implements Logger using rs/zerolog.
type zerologLogger struct {
	log zerolog.Logger
}

// newZerologLogger creates a zerologLogger using the APP_ENV environment
// variable to pick the output format: a human-readable console writer
// for "dev", structured JSON to stdout otherwise. Every log line carries
// the given component field.
func newZerologLogger(component string) Logger {
	env := strings.ToLower(os.Getenv("APP_ENV"))

	var z zerolog.Logger
	if env == "dev" {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		z = zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	} else {
		z = zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
	}
	return &zerologLogger{log: z}
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for _, k := range sortedFieldKeys(fields) {
		ev = ev.Interface(k, fields[k])
	}
	ev.Msg(msg)
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
