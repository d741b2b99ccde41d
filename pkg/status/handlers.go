// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/sbom-broker/internal/logging"
	"github.com/canonical/sbom-broker/internal/monitoring"
	"github.com/canonical/sbom-broker/internal/tracing"
	"github.com/canonical/sbom-broker/internal/version"
)

type API struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.status)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.status")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": version.Version,
	}); err != nil {
		a.logger.Errorf("failed to encode status response: %v", err)
	}
}
