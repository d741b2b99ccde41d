// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package broker

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/sbom-broker/internal/dependencytrack"
	"github.com/canonical/sbom-broker/internal/logging"
	"github.com/canonical/sbom-broker/internal/monitoring"
	"github.com/canonical/sbom-broker/internal/tracing"
	"github.com/canonical/sbom-broker/internal/types"
	"github.com/canonical/sbom-broker/pkg/authentication"
	"github.com/canonical/sbom-broker/pkg/registry"
)

//go:generate mockgen -build_flags=--mod=mod -package broker -destination ./mock_broker.go -source=./interfaces.go

const (
	testIssuer   = "https://idp.example"
	testAudience = "sbom.broker.local"
)

// signedTestToken builds a structurally valid JWT carrying the given
// issuer. The signature is irrelevant here: the service only decodes it
// unverified, verification itself is mocked.
func signedTestToken(t *testing.T, issuer string) string {
	t.Helper()

	claims := jwt.MapClaims{}
	if issuer != "" {
		claims["iss"] = issuer
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return token
}

func testPayload() *types.UploadPayload {
	return &types.UploadPayload{
		ProductName:    "test-product",
		ProductVersion: "1.0.0",
		BOM:            "Ym9t",
	}
}

func newTestService(registry RegistryInterface, verifier TokenVerifierInterface, relay RelayInterface) *Service {
	return NewService(
		registry,
		verifier,
		relay,
		testAudience,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestService_UploadSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockVerifier := NewMockTokenVerifierInterface(ctrl)
	mockRelay := NewMockRelayInterface(ctrl)

	token := signedTestToken(t, testIssuer)
	claims := types.VerifiedClaims{
		"iss":        testIssuer,
		"sub":        "repo:org/app:ref:refs/heads/main",
		"repository": "org/app",
	}
	project := &registry.Project{
		Name:           "github-project",
		Issuer:         testIssuer,
		ParentID:       "1c0f1f92-92bb-44c3-a5c8-e0ca27cd282a",
		RequiredClaims: map[string]string{"repository": "org/app"},
	}

	mockRegistry.EXPECT().HasIssuer(testIssuer).Return(true)
	mockVerifier.EXPECT().VerifyToken(gomock.Any(), token, testIssuer, testAudience, nil).Return(claims, nil)
	mockRegistry.EXPECT().FindByClaims(claims).Return(project, nil)

	var relayed *dependencytrack.UploadPayload
	mockRelay.EXPECT().UploadSBOM(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload *dependencytrack.UploadPayload) (*types.RelayResult, error) {
			relayed = payload
			return &types.RelayResult{StatusCode: 200, Body: []byte(`{"token":"upload-1"}`)}, nil
		},
	)

	s := newTestService(mockRegistry, mockVerifier, mockRelay)

	result, err := s.Upload(context.Background(), "Bearer "+token, testPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", result.StatusCode)
	}
	if relayed.ParentUUID != project.ParentID {
		t.Errorf("expected parent %s, got %s", project.ParentID, relayed.ParentUUID)
	}
	if !relayed.AutoCreate {
		t.Error("expected autoCreate to be set")
	}
	if relayed.ProjectName != "test-product" || relayed.ProjectVersion != "1.0.0" {
		t.Errorf("unexpected relay payload: %+v", relayed)
	}
	if relayed.BOM != "Ym9t" {
		t.Errorf("expected bom to be relayed untouched, got %q", relayed.BOM)
	}
}

func TestService_UploadMalformedCredential(t *testing.T) {
	testCases := []struct {
		name          string
		authorization string
	}{
		{
			name:          "missing header",
			authorization: "",
		},
		{
			name:          "wrong scheme",
			authorization: "Basic dXNlcjpwYXNz",
		},
		{
			name:          "not a jwt",
			authorization: "Bearer not-a-token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No expectations: nothing past step 2 may run.
			s := newTestService(
				NewMockRegistryInterface(ctrl),
				NewMockTokenVerifierInterface(ctrl),
				NewMockRelayInterface(ctrl),
			)

			_, err := s.Upload(context.Background(), tc.authorization, testPayload())
			if !errors.Is(err, authentication.ErrMalformedCredential) {
				t.Errorf("expected ErrMalformedCredential, got %v", err)
			}
		})
	}
}

func TestService_UploadMissingIssuerClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestService(
		NewMockRegistryInterface(ctrl),
		NewMockTokenVerifierInterface(ctrl),
		NewMockRelayInterface(ctrl),
	)

	token := signedTestToken(t, "")
	_, err := s.Upload(context.Background(), "Bearer "+token, testPayload())
	if !errors.Is(err, authentication.ErrMalformedCredential) {
		t.Errorf("expected ErrMalformedCredential, got %v", err)
	}
}

func TestService_UploadUnknownIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockRegistry.EXPECT().HasIssuer("https://other.example").Return(false)

	// The verifier carries no expectations: an unknown issuer must be
	// rejected before any verification attempt.
	s := newTestService(
		mockRegistry,
		NewMockTokenVerifierInterface(ctrl),
		NewMockRelayInterface(ctrl),
	)

	token := signedTestToken(t, "https://other.example")
	_, err := s.Upload(context.Background(), "Bearer "+token, testPayload())
	if !errors.Is(err, ErrUnknownIssuer) {
		t.Errorf("expected ErrUnknownIssuer, got %v", err)
	}
}

func TestService_UploadVerificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockVerifier := NewMockTokenVerifierInterface(ctrl)

	verr := &authentication.VerificationError{
		Kind: authentication.KindClaims,
		Err:  errors.New("token has invalid claims: token is expired"),
	}

	token := signedTestToken(t, testIssuer)
	mockRegistry.EXPECT().HasIssuer(testIssuer).Return(true)
	mockVerifier.EXPECT().VerifyToken(gomock.Any(), token, testIssuer, testAudience, nil).Return(nil, verr)

	s := newTestService(mockRegistry, mockVerifier, NewMockRelayInterface(ctrl))

	_, err := s.Upload(context.Background(), "Bearer "+token, testPayload())

	var got *authentication.VerificationError
	if !errors.As(err, &got) {
		t.Fatalf("expected VerificationError, got %v", err)
	}
	if got.Kind != authentication.KindClaims {
		t.Errorf("expected claims kind, got %s", got.Kind)
	}
}

func TestService_UploadNoMatchingProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockVerifier := NewMockTokenVerifierInterface(ctrl)

	token := signedTestToken(t, testIssuer)
	claims := types.VerifiedClaims{
		"iss":        testIssuer,
		"repository": "org/other",
	}

	mockRegistry.EXPECT().HasIssuer(testIssuer).Return(true)
	mockVerifier.EXPECT().VerifyToken(gomock.Any(), token, testIssuer, testAudience, nil).Return(claims, nil)
	mockRegistry.EXPECT().FindByClaims(claims).Return(nil, registry.ErrNoProjectMatched)

	s := newTestService(mockRegistry, mockVerifier, NewMockRelayInterface(ctrl))

	_, err := s.Upload(context.Background(), "Bearer "+token, testPayload())
	if !errors.Is(err, registry.ErrNoProjectMatched) {
		t.Errorf("expected ErrNoProjectMatched, got %v", err)
	}
}

func TestService_UploadDownstreamUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockVerifier := NewMockTokenVerifierInterface(ctrl)
	mockRelay := NewMockRelayInterface(ctrl)

	token := signedTestToken(t, testIssuer)
	claims := types.VerifiedClaims{"iss": testIssuer}
	project := &registry.Project{
		Name:     "simple-project",
		Issuer:   testIssuer,
		ParentID: "0be24b5c-42a6-4513-9e51-9e8f7a07a4b3",
	}

	mockRegistry.EXPECT().HasIssuer(testIssuer).Return(true)
	mockVerifier.EXPECT().VerifyToken(gomock.Any(), token, testIssuer, testAudience, nil).Return(claims, nil)
	mockRegistry.EXPECT().FindByClaims(claims).Return(project, nil)
	mockRelay.EXPECT().UploadSBOM(gomock.Any(), gomock.Any()).Return(nil, dependencytrack.ErrUnavailable)

	s := newTestService(mockRegistry, mockVerifier, mockRelay)

	_, err := s.Upload(context.Background(), "Bearer "+token, testPayload())
	if !errors.Is(err, dependencytrack.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
