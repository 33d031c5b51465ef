package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/cli/config"
	controller "github.com/secmon-lab/holodeck/pkg/controller/http"
	"github.com/secmon-lab/holodeck/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		latticeCfg   config.Lattice
		firestoreCfg config.Firestore
		redisCfg     config.Redis
		costRatesCfg config.CostRates
	)

	flags := joinFlags(
		serverCfg.Flags(),
		latticeCfg.Flags(),
		firestoreCfg.Flags(),
		redisCfg.Flags(),
		costRatesCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting holodeck server",
				slog.Any("server", serverCfg),
				slog.Any("lattice", latticeCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("redis", redisCfg),
				slog.Any("costRates", costRatesCfg),
			)

			client, err := latticeCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			cache, closeCache, err := redisCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			rates, err := costRatesCfg.Configure()
			if err != nil {
				return err
			}

			edm := usecase.NewDataModelUseCase(client, cache, redisCfg.EDMCacheTTL)
			workspaces := usecase.NewWorkspaces()

			server, err := controller.NewServer(
				ctx,
				serverCfg.Addr,
				&controller.UseCases{
					TopUtilizers: usecase.NewTopUtilizersUseCase(client, repo, edm, workspaces),
					Explore:      usecase.NewExploreUseCase(client, edm, workspaces),
					Reports:      usecase.NewReportUseCase(repo, edm, rates),
					Workspace:    workspaces,
				},
				controller.WithFrontendURL(serverCfg.FrontendURL),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
