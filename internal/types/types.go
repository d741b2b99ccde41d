// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// VerifiedClaims is the claim set of a cryptographically verified token.
// It is produced only by the signature verifier; it is never built from
// unverified input.
type VerifiedClaims map[string]any

// Issuer returns the verified iss claim, or an empty string if the
// claim is absent or not a string.
func (c VerifiedClaims) Issuer() string {
	iss, _ := c["iss"].(string)
	return iss
}

// Subject returns the verified sub claim, or an empty string.
func (c VerifiedClaims) Subject() string {
	sub, _ := c["sub"].(string)
	return sub
}

// UploadPayload is the inbound SBOM upload request body.
type UploadPayload struct {
	ProductName    string `json:"product_name" validate:"required"`
	ProductVersion string `json:"product_version" validate:"required"`
	// Base64-encoded CycloneDX JSON document, opaque to the broker.
	BOM string `json:"bom" validate:"required"`
}

// RelayResult carries the downstream response verbatim. The broker does
// not interpret the body.
type RelayResult struct {
	StatusCode int
	Body       []byte
}
