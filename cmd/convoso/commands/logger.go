package commands

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// zerologLogger adapts a zerolog.Logger to convoso.Logger.
type zerologLogger struct {
	logger zerolog.Logger
}

// NewLogger returns a convoso.Logger writing to out at the given level.
// Terminals get the console format, anything else gets JSON lines.
func NewLogger(out io.Writer, level string) convoso.Logger {
	return &zerologLogger{logger: setupLogger(out, level)}
}

func (l *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}

// setupLogger configures the zerolog logger
func setupLogger(out io.Writer, levelName string) zerolog.Logger {
	level := zerolog.WarnLevel

	switch strings.ToLower(levelName) {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		output := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}

		return zerolog.New(output).Level(level).With().Timestamp().Logger()
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
