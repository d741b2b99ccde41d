// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package broker

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/sbom-broker/internal/dependencytrack"
	"github.com/canonical/sbom-broker/internal/logging"
	"github.com/canonical/sbom-broker/internal/monitoring"
	"github.com/canonical/sbom-broker/internal/tracing"
	"github.com/canonical/sbom-broker/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/upload/sbom", a.uploadSBOM)
}

func (a *API) uploadSBOM(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "broker.API.uploadSBOM")
	defer span.End()

	payload := new(types.UploadPayload)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(payload); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "missing required fields")
		return
	}

	result, err := a.service.Upload(ctx, r.Header.Get("Authorization"), payload)
	if err != nil {
		if errors.Is(err, dependencytrack.ErrUnavailable) {
			// The request was authorized; only the downstream call failed.
			a.errorResponse(w, http.StatusBadGateway, "failed to upload to dependency-track")
			return
		}

		// Authorization-path failures are indistinguishable to the caller.
		// The specific reason is already in the internal logs.
		a.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// Relay the downstream response verbatim.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.StatusCode)
	if _, err := w.Write(result.Body); err != nil {
		a.logger.Errorf("failed to write relay response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}
