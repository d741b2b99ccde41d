// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
)

// ErrMalformedCredential means the bearer scheme was missing, the token
// was not decodable, or the iss claim was absent.
var ErrMalformedCredential = errors.New("malformed credential")

// VerificationKind classifies where in the verification state machine a
// token was rejected. Kinds are retained for internal logs only and
// must never be surfaced to the caller.
type VerificationKind string

const (
	// KindDiscovery means the OIDC discovery document could not be fetched or parsed.
	KindDiscovery VerificationKind = "discovery"
	// KindJWKSURI means the discovery document lacks a jwks_uri field.
	KindJWKSURI VerificationKind = "jwks_uri"
	// KindKeyResolution means the signing keys could not be retrieved or no key matched the token.
	KindKeyResolution VerificationKind = "key_resolution"
	// KindClaims means the signature was invalid or a required claim was missing or failed its check.
	KindClaims VerificationKind = "claims"
)

// VerificationError is the tagged failure of a verification attempt.
type VerificationError struct {
	Kind VerificationKind
	Err  error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("token verification failed (%s): %v", e.Kind, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// VerificationKindOf returns the kind of a verification error, or an
// empty kind when the error is not one.
func VerificationKindOf(err error) VerificationKind {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}
