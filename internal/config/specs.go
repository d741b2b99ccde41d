// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	ProjectsPath string `envconfig:"projects_path" required:"true"`

	ExpectedAudience string `envconfig:"expected_audience" default:"sbom.broker.local"`

	DependencyTrackURL    string `envconfig:"dependency_track_url" default:"https://sbom.eclipse.org/api/v1/bom"`
	DependencyTrackAPIKey string `envconfig:"dependency_track_api_key" required:"true"`

	VerifyTimeout time.Duration `envconfig:"verify_timeout" default:"10s"`
	RelayTimeout  time.Duration `envconfig:"relay_timeout" default:"30s"`
}
