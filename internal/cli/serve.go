package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "notary-profile/internal/adapter/http"
	"notary-profile/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profile preview page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			return Serve(cmd.Context(), a.cfg.HTTP.Port, a)
		},
	}
	return cmd
}

// Serve runs the preview server until ctx is cancelled. The first fetch
// cycle starts alongside the listener so the page shows loading first.
func Serve(ctx context.Context, port int, a *app) error {
	h := httpadapter.NewHandler(a.processor, a.exporter, usecase.LogSink{Logger: a.logger}, a.registry, a.logger)
	srv := httpadapter.NewApp(h)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server.listen", "port", port)
		return srv.Listen(fmt.Sprintf(":%d", port))
	})
	g.Go(func() error {
		_, err := a.processor.Refresh(gctx)
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("server.shutdown")
		return srv.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
