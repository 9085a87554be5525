package log

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Trace(string, ...interface{})
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

var currLevel = int32(LevelInfo)

var backend = newBackend()

var rootLogger = &logrusLogger{
	backend: backend,
}

func newBackend() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.TraceLevel)
	return l
}

func SetLevel(level Level) {
	atomic.StoreInt32(&currLevel, int32(level))
}

func CurrentLevel() Level {
	return Level(atomic.LoadInt32(&currLevel))
}

// SetOutput redirects every logger. The default is stderr.
func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}

func init() {
	// set log level to trace by default in test
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelTrace)
	}
}
