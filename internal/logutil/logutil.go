// Package logutil holds the logger defaults shared by the estimator and the
// top-level facade.
package logutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops every entry. Library code uses it
// when the caller does not inject one.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Discard()
	}
	return l
}
