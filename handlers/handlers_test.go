package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/upb/solid-lab/app"
	"github.com/upb/solid-lab/config"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Bindings: config.BindingsConfig{
			Calculator: config.ProviderSensible,
			Directory:  config.SourceEmployees,
			Catalog:    config.SourceProducts,
		},
		Observability: config.ObservabilityConfig{
			LogLevel:       "info",
			LogFormat:      "json",
			MetricsEnabled: false,
		},
	}
}

func newTestDeps(t *testing.T, cfg *config.Config) *app.Dependencies {
	t.Helper()

	deps, err := app.NewDependencies(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = deps.Close(context.Background())
	})
	return deps
}
