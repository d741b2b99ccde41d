// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package broker

import (
	"context"

	"github.com/canonical/sbom-broker/internal/dependencytrack"
	"github.com/canonical/sbom-broker/internal/logging"
	"github.com/canonical/sbom-broker/internal/monitoring"
	"github.com/canonical/sbom-broker/internal/tracing"
	"github.com/canonical/sbom-broker/internal/types"
	"github.com/canonical/sbom-broker/pkg/authentication"
)

// Service is the broker orchestrator. Each call is an independent unit
// of work: the sequence is fail-fast and shares nothing across requests
// beyond the immutable registry and configuration.
type Service struct {
	registry RegistryInterface
	verifier TokenVerifierInterface
	relay    RelayInterface
	audience string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	registry RegistryInterface,
	verifier TokenVerifierInterface,
	relay RelayInterface,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry: registry,
		verifier: verifier,
		relay:    relay,
		audience: audience,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Upload authorizes the bearer credential against the project registry
// and, only on success, relays the SBOM to Dependency-Track under the
// matched project's parent. All authorization rejections are logged
// with their specific reason but returned unwrapped for the transport
// layer to collapse into one generic failure.
func (s *Service) Upload(ctx context.Context, authorization string, payload *types.UploadPayload) (*types.RelayResult, error) {
	ctx, span := s.tracer.Start(ctx, "broker.Service.Upload")
	defer span.End()

	token, err := authentication.ExtractBearerToken(authorization)
	if err != nil {
		s.logger.Warnf("bearer token extraction failed: %v", err)
		s.logger.Security().AuthnFailure("", "malformed_credential")
		return nil, err
	}

	issuer, err := authentication.UnverifiedIssuer(token)
	if err != nil {
		s.logger.Warnf("token decode failed: %v", err)
		s.logger.Security().AuthnFailure("", "malformed_credential")
		return nil, err
	}

	// Cheap unauthenticated gate: an unknown issuer is rejected before
	// any network round trip, so discovery is never attempted against an
	// attacker-chosen URL. The issuer is only trusted after verification
	// below.
	if !s.registry.HasIssuer(issuer) {
		s.logger.Warnf("issuer %s is not trusted by any project", issuer)
		s.logger.Security().AuthnFailure("", "unknown_issuer")
		return nil, ErrUnknownIssuer
	}

	claims, err := s.verifier.VerifyToken(ctx, token, issuer, s.audience, nil)
	if err != nil {
		s.logger.Warnf("token verification failed: %v", err)
		s.logger.Security().AuthnFailure("", string(authentication.VerificationKindOf(err)))
		return nil, err
	}

	// Final authorization gate, on verified claims only.
	project, err := s.registry.FindByClaims(claims)
	if err != nil {
		s.logger.Warnf("verified token from %s matched no registered project", claims.Issuer())
		s.logger.Security().AuthzFailure(claims.Subject(), "sbom_upload")
		return nil, err
	}

	s.logger.Infof("successfully authenticated project %s with issuer %s", project.Name, claims.Issuer())
	s.logger.Security().AuthnSuccess(claims.Subject(), claims.Issuer())

	result, err := s.relay.UploadSBOM(ctx, &dependencytrack.UploadPayload{
		ProjectName:    payload.ProductName,
		ProjectVersion: payload.ProductVersion,
		ParentUUID:     project.ParentID,
		AutoCreate:     true,
		BOM:            payload.BOM,
	})
	if err != nil {
		s.logger.Errorf("dependency-track upload failed: %v", err)
		return nil, err
	}

	s.logger.Infof("uploaded SBOM for %s/%s to dependency-track (status: %d)", project.Name, payload.ProductName, result.StatusCode)

	return result, nil
}
