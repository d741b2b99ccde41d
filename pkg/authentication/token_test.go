// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestExtractBearerToken(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected string
		wantErr  bool
	}{
		{
			name:     "valid bearer",
			header:   "Bearer abc.def.ghi",
			expected: "abc.def.ghi",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "basic scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: true,
		},
		{
			name:    "lowercase scheme",
			header:  "bearer abc.def.ghi",
			wantErr: true,
		},
		{
			name:    "empty token",
			header:  "Bearer ",
			wantErr: true,
		},
		{
			name:    "scheme only",
			header:  "Bearer",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tc.header)

			if tc.wantErr {
				if !errors.Is(err, ErrMalformedCredential) {
					t.Fatalf("expected ErrMalformedCredential, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tc.expected {
				t.Errorf("expected token %q, got %q", tc.expected, token)
			}
		})
	}
}

func TestUnverifiedIssuer(t *testing.T) {
	sign := func(t *testing.T, claims jwt.MapClaims) string {
		t.Helper()

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		if err != nil {
			t.Fatal(err)
		}
		return token
	}

	t.Run("returns iss claim", func(t *testing.T) {
		token := sign(t, jwt.MapClaims{"iss": "https://issuer.example", "sub": "x"})

		issuer, err := UnverifiedIssuer(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if issuer != "https://issuer.example" {
			t.Errorf("expected https://issuer.example, got %q", issuer)
		}
	})

	t.Run("missing iss claim", func(t *testing.T) {
		token := sign(t, jwt.MapClaims{"sub": "x"})

		if _, err := UnverifiedIssuer(token); !errors.Is(err, ErrMalformedCredential) {
			t.Fatalf("expected ErrMalformedCredential, got %v", err)
		}
	})

	t.Run("not a jwt", func(t *testing.T) {
		if _, err := UnverifiedIssuer("not-a-token"); !errors.Is(err, ErrMalformedCredential) {
			t.Fatalf("expected ErrMalformedCredential, got %v", err)
		}
	})
}
