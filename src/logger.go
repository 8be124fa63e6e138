package mim

import "github.com/sirupsen/logrus"

// LogCategory groups diagnostics by the subsystem that produced them,
// mirroring the category taxonomy a caller would filter on.
type LogCategory string

const (
	CatParse LogCategory = "parse" // Reader diagnostics
	CatLoad  LogCategory = "load"  // Loader diagnostics
	CatStep  LogCategory = "step"  // keyseq matching
	CatEval  LogCategory = "eval"  // expression evaluation
	CatExec  LogCategory = "exec"  // action execution
)

// Logger is the diagnostic sink the Loader and Engine report degraded
// document/runtime conditions to. Logging never changes conversion
// output or control flow; it exists purely for embedders who opt in.
type Logger interface {
	DebugCat(cat LogCategory, format string, args ...interface{})
	WarnCat(cat LogCategory, format string, args ...interface{})
}

// DiscardLogger implements Logger by dropping every message. It is the
// default so embedders pay nothing unless they opt in via SetLogger.
type DiscardLogger struct{}

func (DiscardLogger) DebugCat(LogCategory, string, ...interface{}) {}
func (DiscardLogger) WarnCat(LogCategory, string, ...interface{})  {}

// LogrusLogger adapts a *logrus.Logger to the Logger interface, tagging
// every entry with its LogCategory as a structured field.
type LogrusLogger struct {
	Entry *logrus.Logger
}

// NewLogrusLogger returns a Logger backed by a fresh *logrus.Logger at
// the given level (e.g. logrus.DebugLevel to see everything).
func NewLogrusLogger(level logrus.Level) *LogrusLogger {
	l := logrus.New()
	l.SetLevel(level)
	return &LogrusLogger{Entry: l}
}

func (l *LogrusLogger) DebugCat(cat LogCategory, format string, args ...interface{}) {
	l.Entry.WithField("category", string(cat)).Debugf(format, args...)
}

func (l *LogrusLogger) WarnCat(cat LogCategory, format string, args ...interface{}) {
	l.Entry.WithField("category", string(cat)).Warnf(format, args...)
}
