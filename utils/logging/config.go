// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// nopCloser wraps an os file that should not be closed when the logger is
// stopped, such as stdout or stderr.
type nopCloser struct {
	*os.File
}

func (nopCloser) Close() error {
	return nil
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	return config
}

// NewDefaultLogger returns a logger named [name] that writes
// console-formatted logs at [level] to stdout.
func NewDefaultLogger(name string, level Level) Logger {
	encoder := zapcore.NewConsoleEncoder(consoleEncoderConfig())
	core := NewWrappedCore(level, nopCloser{os.Stdout}, encoder)
	return NewLogger(name, core)
}
