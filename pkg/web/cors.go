// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/go-chi/cors"
)

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	)
}
