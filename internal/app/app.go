package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/ctxlog"
	"github.com/vk/theoremgo/internal/envgraph"
	"github.com/vk/theoremgo/internal/registry"
	"github.com/vk/theoremgo/internal/render"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	loader  config.Loader
	model   *config.Model
	graph   *envgraph.Graph
	backend *render.Backend
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, a loaded and
// validated environment model, and the selected backend. Configuration
// defects are fatal startup errors and panic; main recovers them into a
// clean exit.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.LoadEnvironments(ctx, appConfig.EnvironmentsPath)
	if err != nil {
		panic(fmt.Errorf("failed to load environment configuration: %w", err))
	}
	logger.Debug("Environment configuration loaded.", "environment_count", len(model.Environments))

	graph, err := envgraph.New(ctx, model)
	if err != nil {
		panic(fmt.Errorf("invalid environment configuration: %w", err))
	}
	logger.Debug("Environment graph validated.")

	reg := registry.New()
	backend, err := reg.Backend(appConfig.Backend)
	if err != nil {
		panic(err)
	}
	logger.Debug("Backend selected.", "backend", backend.Name)

	return &App{
		outW:    outW,
		logger:  logger,
		loader:  loader,
		model:   model,
		graph:   graph,
		backend: backend,
	}
}

// Graph returns the validated environment graph. This is primarily for
// testing.
func (a *App) Graph() *envgraph.Graph {
	return a.graph
}
