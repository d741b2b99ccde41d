// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canonical/sbom-broker/internal/logging"
)

type API struct {
	logger logging.LoggerInterface
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{logger: logger}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/metrics", a.prometheusHTTP)
}

func (a *API) prometheusHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
