// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/sbom-broker/internal/types"
)

type TokenVerifierInterface interface {
	// VerifyToken cryptographically verifies a raw JWT against the given
	// issuer's published keys and validates the standard claims plus any
	// additional required claim names. The returned claim set is the only
	// source of trusted claims in the system.
	VerifyToken(ctx context.Context, rawToken, issuer, audience string, requiredClaims []string) (types.VerifiedClaims, error)
}
