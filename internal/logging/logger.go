// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() *SecurityLogger {
	return l.security
}

// NewLogger creates a JSON logger at the given level, falling back to
// error level if the level string does not parse.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger := zap.Must(config.Build())

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: logger},
	}
}
