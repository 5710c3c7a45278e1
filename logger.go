package esolang

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var stdLogger = logrus.StandardLogger()

func init() {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err == nil {
		stdLogger.SetLevel(level)
	}
}

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Print(args ...interface{})
	Warn(args ...interface{})
}

func SetLogger(l *logrus.Logger) {
	stdLogger = l
}

// newTraceLogger returns the logger that receives per-step debug lines.
func newTraceLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(traceFormatter{})
	return l
}

// traceFormatter prints the bare message, one line per entry.
type traceFormatter struct{}

func (traceFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return append([]byte(e.Message), '\n'), nil
}

type runLogger struct {
	base    *logrus.Logger
	Run     RunID
	Program string
	Step    int
}

func newRunLogger(base *logrus.Logger) runLogger {
	if base == nil {
		base = stdLogger
	}
	return runLogger{base: base}
}

func (l runLogger) WithRun(id RunID) runLogger {
	l.Run = id
	return l
}

func (l runLogger) WithProgram(path string) runLogger {
	l.Program = path
	return l
}

func (l runLogger) WithStep(n int) runLogger {
	l.Step = n
	return l
}

func (l runLogger) Logger() Logger {
	fields := logrus.Fields{"channel": "run"}
	if l.Run.IsValid() {
		fields["run"] = l.Run.String()
	}
	if l.Program != "" {
		fields["program"] = l.Program
	}
	if l.Step > 0 {
		fields["channel"] = "step"
		fields["step"] = l.Step
	}
	return l.base.WithFields(fields)
}
