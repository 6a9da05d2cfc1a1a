package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log is the logger used by the command line tool.
var Log = New(os.Stderr, "info", "console")

type Logger struct {
	z zerolog.Logger
}

// New returns a logger writing to w.
// format is either "json" or "console", level is one of debug, info, warn, error.
func New(w io.Writer, level, format string) *Logger {
	if strings.ToLower(format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	z := zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
	return &Logger{z: z}
}

// Setup replaces Log with a stderr logger.
func Setup(level, format string) {
	Log = New(os.Stderr, level, format)
}

// ParseLevel maps a level name to a zerolog level. Unknown names mean info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.write(l.z.Debug(), msg, args)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.write(l.z.Info(), msg, args)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.write(l.z.Warn(), msg, args)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.write(l.z.Error(), msg, args)
}

// write adds key-value pairs to e and sends it. A trailing key without a value is dropped.
func (l *Logger) write(e *zerolog.Event, msg string, args []interface{}) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}
		if err, ok := args[i+1].(error); ok {
			e.AnErr(key, err)
			continue
		}
		e.Interface(key, args[i+1])
	}
	e.Msg(msg)
}
