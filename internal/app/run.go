package app

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/statusgridgo/internal/ctxlog"
	"github.com/vk/statusgridgo/internal/shell"
)

// Run executes the main application loop: an initial compute pass so the
// first query already sees consistent rollups, then the interactive shell
// reading from in until it terminates.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx)
		defer a.closeHealthcheckServer(ctx)
	}

	if err := a.tree.Compute(ctx); err != nil {
		return fmt.Errorf("initial compute failed: %w", err)
	}
	a.logger.Debug("Initial compute pass done.")

	sh := shell.New(a.tree, in, a.outW)
	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("shell terminated: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
