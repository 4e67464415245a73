package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

type Logger struct {
	Verbose bool
	Debug   bool

	// Out receives log lines. Nil means os.Stderr.
	Out io.Writer
}

func (l Logger) level() zerolog.Level {
	switch {
	case l.Debug:
		return zerolog.DebugLevel
	case l.Verbose:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

func (l Logger) sink() zerolog.Logger {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	w := zerolog.ConsoleWriter{
		Out:          out,
		NoColor:      color.NoColor,
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel:  formatLevel,
	}
	return zerolog.New(w).Level(l.level())
}

func formatLevel(i interface{}) string {
	level, _ := i.(string)
	switch level {
	case zerolog.LevelDebugValue:
		return color.CyanString("[debug]")
	case zerolog.LevelInfoValue:
		return color.GreenString("[info]")
	case zerolog.LevelWarnValue:
		return color.YellowString("[warn]")
	case zerolog.LevelErrorValue:
		return color.RedString("[error]")
	default:
		return fmt.Sprintf("[%s]", level)
	}
}

func (l Logger) Infof(msg string, args ...any) {
	z := l.sink()
	z.Info().Msgf(msg, args...)
}

func (l Logger) Debugf(msg string, args ...any) {
	z := l.sink()
	z.Debug().Msgf(msg, args...)
}

func (l Logger) Warnf(msg string, args ...any) {
	z := l.sink()
	z.Warn().Msgf(msg, args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	z := l.sink()
	z.Error().Msgf(msg, args...)
}
