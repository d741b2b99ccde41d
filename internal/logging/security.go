// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit-grade events on a separate structured
// channel. Events are observability-only and never affect control flow.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name string, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("security_event", name)}, fields...)
	s.l.Info("security event", fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("system_shutdown")
}

func (s *SecurityLogger) AuthnSuccess(subject, issuer string) {
	s.event("authn_success", zap.String("subject", subject), zap.String("issuer", issuer))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.event("authn_failure", zap.String("subject", subject), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, context string) {
	s.event("authz_failure", zap.String("subject", subject), zap.String("context", context))
}
