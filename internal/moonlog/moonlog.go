// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package moonlog is the ambient logging contract every execution-core
// component takes: a minimal Logger shape (Debug/Info/Warn/Error/Fatal
// over a message and loosely-typed fields) rather than depending on a
// specific structured-logging library's concrete field type, so callers
// can plug in zap, slog, or a test recorder.
package moonlog

import (
	"fmt"
	"log"
	"os"
)

// Logger is the structured logger every execution-core component takes.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	Fatal(msg string, fields ...interface{})
}

// noopLogger discards everything. Used in tests and in the symbolic
// session, where per-operation logging would otherwise be noisy.
type noopLogger struct{}

// NoOp returns a Logger that discards everything.
func NoOp() Logger { return noopLogger{} }

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Fatal(string, ...interface{}) {}

// stdLogger is a minimal production Logger backed by the standard
// library's log package, used by cmd/moosed when no richer logger is
// wired in.
type stdLogger struct {
	*log.Logger
	name string
}

// New returns the default production logger, prefixed with name.
func New(name string) Logger {
	return &stdLogger{
		Logger: log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds),
		name:   name,
	}
}

func (l *stdLogger) line(level, msg string, fields ...interface{}) string {
	s := fmt.Sprintf("[%s] %s: %s", level, l.name, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		s += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	return s
}

func (l *stdLogger) Debug(msg string, fields ...interface{}) { l.Logger.Println(l.line("DEBUG", msg, fields...)) }
func (l *stdLogger) Info(msg string, fields ...interface{})  { l.Logger.Println(l.line("INFO", msg, fields...)) }
func (l *stdLogger) Warn(msg string, fields ...interface{})  { l.Logger.Println(l.line("WARN", msg, fields...)) }
func (l *stdLogger) Error(msg string, fields ...interface{}) { l.Logger.Println(l.line("ERROR", msg, fields...)) }
func (l *stdLogger) Fatal(msg string, fields ...interface{}) { l.Logger.Fatalln(l.line("FATAL", msg, fields...)) }
