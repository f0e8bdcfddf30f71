// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enginelog is a small leveled logger in the DEBUG..ERROR
// ladder-and-prefix style, reworked as an injectable value instead of
// a package-level global. A shared mutable default would tie
// otherwise-independent engine instances together, so every
// *engine.Engine takes its own *Logger (or nil, meaning silent).
package enginelog

import (
	"fmt"
	"io"
	"strings"
)

// Level filters which events reach a Logger's writer.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < DEBUG || int(l) > len(levelNames)-1 {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Logger writes leveled, prefixed lines to an underlying io.Writer.
type Logger struct {
	prefix string
	level  Level
	out    io.Writer
}

// New returns a Logger that writes lines at level WARN or above to out,
// each prefixed with name.
func New(name string, out io.Writer) *Logger {
	return &Logger{prefix: name, level: WARN, out: out}
}

// SetLevel sets the minimum level this logger emits.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if l == nil || l.out == nil || level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s: %s\n", level, l.prefix, strings.TrimRight(msg, "\n"))
}

// Debugf logs at DEBUG level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(DEBUG, format, args...) }

// Infof logs at INFO level.
func (l *Logger) Infof(format string, args ...interface{}) { l.log(INFO, format, args...) }

// Warnf logs at WARN level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(WARN, format, args...) }

// Errorf logs at ERROR level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(ERROR, format, args...) }
