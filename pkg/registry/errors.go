// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"errors"
)

// Sentinel errors for registry operations.
var (
	// ErrNoProjectMatched means verified claims satisfy no registered project.
	ErrNoProjectMatched = errors.New("no project matched the verified claims")
	// ErrInvalidConfig means the projects file failed to load or validate.
	ErrInvalidConfig = errors.New("invalid projects configuration")
)
