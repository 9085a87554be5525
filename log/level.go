package log

import "github.com/pkg/errors"

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var ErrInvalidLevel = errors.New("invalid log level")

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

func NewLevel(l string) (Level, error) {
	for level, name := range levelNames {
		if name == l {
			return level, nil
		}
	}
	return LevelInfo, errors.Wrapf(ErrInvalidLevel, "%q", l)
}

func (l Level) String() string {
	name, ok := levelNames[l]
	if !ok {
		panic("invalid level")
	}
	return name
}
