// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MicahParks/jwkset"
	keyfunc "github.com/MicahParks/keyfunc/v3"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/sbom-broker/internal/logging"
	"github.com/canonical/sbom-broker/internal/monitoring"
	"github.com/canonical/sbom-broker/internal/tracing"
	"github.com/canonical/sbom-broker/internal/types"
)

var (
	otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
)

// OIDCVerifier verifies tokens against their issuer's published keys.
// Every call runs the full discovery, key resolution and validation
// sequence under a bounded, request-scoped deadline; nothing is cached
// across calls, so a rotated or revoked key takes effect immediately.
type OIDCVerifier struct {
	timeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewOIDCVerifier(
	timeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *OIDCVerifier {
	return &OIDCVerifier{
		timeout: timeout,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (v *OIDCVerifier) VerifyToken(ctx context.Context, rawToken, issuer, audience string, requiredClaims []string) (types.VerifiedClaims, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.OIDCVerifier.VerifyToken")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	jwksURI, err := v.discoverJWKSURI(ctx, issuer)
	if err != nil {
		return nil, err
	}

	keys, err := v.fetchKeys(ctx, jwksURI)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		keys.Keyfunc,
		// Asymmetric signing only. A symmetric algorithm here would let a
		// public discovery-fetched value act as a shared secret.
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenUnverifiable) {
			// Keyfunc failure: no published key matched the token's key ID.
			return nil, &VerificationError{Kind: KindKeyResolution, Err: err}
		}
		return nil, &VerificationError{Kind: KindClaims, Err: err}
	}

	if !token.Valid {
		return nil, &VerificationError{Kind: KindClaims, Err: errors.New("token is not valid")}
	}

	if _, ok := claims["iat"]; !ok {
		return nil, &VerificationError{Kind: KindClaims, Err: errors.New("token has no iat claim")}
	}

	for _, name := range requiredClaims {
		if _, ok := claims[name]; !ok {
			return nil, &VerificationError{Kind: KindClaims, Err: fmt.Errorf("token has no %s claim", name)}
		}
	}

	return types.VerifiedClaims(claims), nil
}

// discoverJWKSURI fetches the issuer's well-known OpenID configuration
// and extracts the key endpoint.
func (v *OIDCVerifier) discoverJWKSURI(ctx context.Context, issuer string) (string, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		v.setDiscoveryAvailability(0)
		return "", &VerificationError{Kind: KindDiscovery, Err: err}
	}
	v.setDiscoveryAvailability(1)

	var doc struct {
		JWKSURI string `json:"jwks_uri"`
	}
	if err := provider.Claims(&doc); err != nil {
		return "", &VerificationError{Kind: KindDiscovery, Err: err}
	}

	if doc.JWKSURI == "" {
		return "", &VerificationError{Kind: KindJWKSURI, Err: errors.New("discovery document has no jwks_uri")}
	}

	return doc.JWKSURI, nil
}

// fetchKeys retrieves the issuer's JWKS. The storage performs its first
// fetch synchronously and is discarded with the request context.
func (v *OIDCVerifier) fetchKeys(ctx context.Context, jwksURI string) (keyfunc.Keyfunc, error) {
	storage, err := jwkset.NewStorageFromHTTP(jwksURI, jwkset.HTTPClientStorageOptions{
		Ctx:         ctx,
		Client:      &otelHTTPClient,
		HTTPTimeout: v.timeout,
	})
	if err != nil {
		return nil, &VerificationError{Kind: KindKeyResolution, Err: err}
	}

	keys, err := keyfunc.New(keyfunc.Options{
		Ctx:     ctx,
		Storage: storage,
	})
	if err != nil {
		return nil, &VerificationError{Kind: KindKeyResolution, Err: err}
	}

	return keys, nil
}

func (v *OIDCVerifier) setDiscoveryAvailability(value float64) {
	if err := v.monitor.SetDependencyAvailability(map[string]string{"component": "oidc_discovery"}, value); err != nil {
		v.logger.Errorf("failed to set dependency availability metric: %v", err)
	}
}
