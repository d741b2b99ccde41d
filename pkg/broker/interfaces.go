// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package broker

import (
	"context"

	"github.com/canonical/sbom-broker/internal/dependencytrack"
	"github.com/canonical/sbom-broker/internal/types"
	"github.com/canonical/sbom-broker/pkg/registry"
)

type ServiceInterface interface {
	Upload(ctx context.Context, authorization string, payload *types.UploadPayload) (*types.RelayResult, error)
}

type RegistryInterface interface {
	HasIssuer(issuer string) bool
	FindByClaims(claims types.VerifiedClaims) (*registry.Project, error)
}

type TokenVerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken, issuer, audience string, requiredClaims []string) (types.VerifiedClaims, error)
}

type RelayInterface interface {
	UploadSBOM(ctx context.Context, payload *dependencytrack.UploadPayload) (*types.RelayResult, error)
}
