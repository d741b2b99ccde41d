// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	logger := NewLogger("debug")
	if logger == nil {
		t.Fatal("expected logger")
	}
	if logger.Security() == nil {
		t.Fatal("expected security logger")
	}
}

func TestInvalidLevelFallsBack(t *testing.T) {
	logger := NewLogger("invalid")
	if logger == nil {
		t.Fatal("expected logger despite invalid level")
	}
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	logger.Infof("dropped %s", "message")
	logger.Security().SystemStartup()
	logger.Security().AuthnFailure("subject", "reason")
}
