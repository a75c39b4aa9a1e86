package log

import (
	"io"
	"io/ioutil"
	stdlog "log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	Trace   *stdlog.Logger
	Info    *stdlog.Logger
	Warning *stdlog.Logger
	Error   *stdlog.Logger
)

func init() {
	// usable before InitLog, e.g. from tests
	setup(ioutil.Discard, os.Stderr)
}

// InitLog wires the package loggers. Tracing is enabled with SKETCHPAD_TRACE=1.
func InitLog() {
	var trace io.Writer = ioutil.Discard
	if os.Getenv("SKETCHPAD_TRACE") == "1" {
		trace = os.Stderr
	}
	setup(trace, os.Stderr)
}

func setup(trace, out io.Writer) {
	Trace = newLogger(trace, zerolog.TraceLevel)
	Info = newLogger(out, zerolog.InfoLevel)
	Warning = newLogger(out, zerolog.WarnLevel)
	Error = newLogger(out, zerolog.ErrorLevel)
}

func newLogger(w io.Writer, level zerolog.Level) *stdlog.Logger {
	if w == ioutil.Discard {
		return stdlog.New(ioutil.Discard, "", 0)
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	zl := zerolog.New(console).With().Timestamp().Logger()
	return stdlog.New(levelWriter{logger: zl, level: level}, "", 0)
}

// levelWriter adapts a zerolog logger to the io.Writer a *log.Logger needs,
// emitting every line at a fixed level.
type levelWriter struct {
	logger zerolog.Logger
	level  zerolog.Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	w.logger.WithLevel(w.level).Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
