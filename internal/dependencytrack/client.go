// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dependencytrack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/sbom-broker/internal/logging"
	"github.com/canonical/sbom-broker/internal/monitoring"
	"github.com/canonical/sbom-broker/internal/tracing"
	"github.com/canonical/sbom-broker/internal/types"
)

type ClientInterface interface {
	UploadSBOM(ctx context.Context, payload *UploadPayload) (*types.RelayResult, error)
}

// UploadPayload is the Dependency-Track BOM upload request body.
type UploadPayload struct {
	ProjectName    string `json:"projectName"`
	ProjectVersion string `json:"projectVersion"`
	ParentUUID     string `json:"parentUUID"`
	AutoCreate     bool   `json:"autoCreate"`
	BOM            string `json:"bom"`
}

type Client struct {
	url    string
	apiKey string
	client *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(
	url, apiKey string,
	timeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// UploadSBOM posts the payload to Dependency-Track and returns the
// downstream status and body verbatim. The caller decides what the
// response means.
func (c *Client) UploadSBOM(ctx context.Context, payload *UploadPayload) (*types.RelayResult, error) {
	ctx, span := c.tracer.Start(ctx, "dependencytrack.Client.UploadSBOM")
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode upload payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.setAvailability(0)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.setAvailability(1)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	return &types.RelayResult{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

func (c *Client) setAvailability(value float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "dependency_track"}, value); err != nil {
		c.logger.Errorf("failed to set dependency availability metric: %v", err)
	}
}
