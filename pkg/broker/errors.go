// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package broker

import (
	"errors"
)

// ErrUnknownIssuer means the unverified issuer is trusted by no
// registered project. Rejected before any network call is made, and
// surfaced to the caller as a generic authorization failure so issuers
// cannot be enumerated.
var ErrUnknownIssuer = errors.New("issuer not trusted by any project")
