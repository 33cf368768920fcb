package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/statusgridgo/internal/config"
	"github.com/vk/statusgridgo/internal/ctxlog"
	"github.com/vk/statusgridgo/internal/tree"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: one loaded status tree plus the surfaces that operate on it.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	tree   *tree.Tree

	httpServer *http.Server
}

// NewApp constructs the application: it builds an isolated logger, loads
// the topology through the given loader, and populates a fresh tree.
// Any configuration problem fails construction; there is no degraded mode
// with a partially built tree.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded into unified model.", "nodes", len(model.Nodes))

	t := tree.New()
	if err := t.Load(ctx, model); err != nil {
		return nil, fmt.Errorf("failed to build status tree: %w", err)
	}
	logger.Debug("Status tree built.", "nodes", len(model.Nodes))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		tree:   t,
	}, nil
}

// Tree returns the application's status tree. This is primarily for testing.
func (a *App) Tree() *tree.Tree {
	return a.tree
}
