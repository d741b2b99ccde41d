// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/sbom-broker/internal/config"
	"github.com/canonical/sbom-broker/internal/dependencytrack"
	"github.com/canonical/sbom-broker/internal/logging"
	"github.com/canonical/sbom-broker/internal/monitoring/prometheus"
	"github.com/canonical/sbom-broker/internal/tracing"
	"github.com/canonical/sbom-broker/pkg/authentication"
	"github.com/canonical/sbom-broker/pkg/broker"
	"github.com/canonical/sbom-broker/pkg/registry"
	"github.com/canonical/sbom-broker/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("sbom-broker", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	// A partially loaded registry must never serve traffic.
	projects, err := registry.LoadFromFile(specs.ProjectsPath)
	if err != nil {
		return fmt.Errorf("failed to load project registry: %w", err)
	}
	logger.Infof("loaded %d projects from %s", projects.Size(), specs.ProjectsPath)

	verifier := authentication.NewOIDCVerifier(specs.VerifyTimeout, tracer, monitor, logger)

	relay := dependencytrack.NewClient(
		specs.DependencyTrackURL,
		specs.DependencyTrackAPIKey,
		specs.RelayTimeout,
		tracer,
		monitor,
		logger,
	)

	brokerService := broker.NewService(
		projects,
		verifier,
		relay,
		specs.ExpectedAudience,
		tracer,
		monitor,
		logger,
	)

	brokerAPI := broker.NewAPI(brokerService, tracer, monitor, logger)

	router := web.NewRouter(brokerAPI, tracer, monitor, logger)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
