package appconfig

//go:generate go run github.com/dmarkham/enumer -type LogLevel -trimprefix LogLevel -transform lower -output loglevel.gen.go

import (
	"github.com/rs/zerolog"
)

// LogLevel is the verbosity of the application logger.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Valid reports whether l is one of the declared levels.
func (l LogLevel) Valid() bool {
	return l.IsALogLevel()
}

// Zerolog maps the level onto the logger library's own levels.
func (l LogLevel) Zerolog() zerolog.Level {
	switch l {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
