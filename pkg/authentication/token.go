// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ExtractBearerToken pulls the token out of an Authorization header
// value. Only the "Bearer <token>" form (RFC 6750) is accepted.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("%w: missing authorization header", ErrMalformedCredential)
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("%w: authorization scheme is not Bearer", ErrMalformedCredential)
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", fmt.Errorf("%w: empty bearer token", ErrMalformedCredential)
	}

	return token, nil
}

// UnverifiedIssuer decodes the iss claim without verifying the
// signature. The result selects the discovery endpoint and feeds the
// registry pre-filter; it must never be treated as authenticated.
func UnverifiedIssuer(rawToken string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawToken, claims); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}

	issuer, err := claims.GetIssuer()
	if err != nil || issuer == "" {
		return "", fmt.Errorf("%w: token has no iss claim", ErrMalformedCredential)
	}

	return issuer, nil
}
