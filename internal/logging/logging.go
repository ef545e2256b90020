// Package logging builds the logrus loggers used by the CLI and the board.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w. Debug enables debug level;
// otherwise only warnings and errors are written.
func New(w io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: !debug,
	})
	l.SetLevel(logrus.WarnLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ToFile returns a logger appending to path, for use while a terminal UI
// owns stdout and stderr. Without debug nothing is written and no file is
// created. The returned close function is never nil.
func ToFile(path string, debug bool) (*logrus.Logger, func() error, error) {
	if !debug {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}
	return New(f, true), f.Close, nil
}
