// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dependencytrack

import (
	"errors"
)

// ErrUnavailable means the upload request never produced an HTTP
// response. Any response, success or not, is relayed to the caller
// instead.
var ErrUnavailable = errors.New("dependency-track unavailable")
