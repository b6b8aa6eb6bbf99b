// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the logrus logger shared by the CLI commands.
package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the configured level does not parse.
const DefaultLevel = logrus.InfoLevel

// New returns a text logger writing to w at the named level. Unknown level
// names fall back to DefaultLevel.
func New(level string, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = DefaultLevel
	}
	l.SetLevel(lvl)
	return l
}

// ForRun tags every entry from l with a fresh run identifier so the lines
// of one invocation can be picked out of a shared log.
func ForRun(l *logrus.Logger) *logrus.Entry {
	return l.WithField("run", uuid.NewString()[:8])
}
