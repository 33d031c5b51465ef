package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/cli/config"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/repository"
	"github.com/secmon-lab/holodeck/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func cmdRank() *cli.Command {
	var (
		latticeCfg  config.Lattice
		redisCfg    config.Redis
		requestPath string
		outputPath  string
		token       string
	)

	flags := joinFlags(
		latticeCfg.Flags(),
		redisCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "request",
				Aliases:     []string{"r"},
				Usage:       "YAML file of the top utilizer request",
				Required:    true,
				Destination: &requestPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "CSV output file (default: stdout)",
				Destination: &outputPath,
			},
			&cli.StringFlag{
				Name:        "token",
				Usage:       "Bearer token forwarded to the data API",
				Sources:     cli.EnvVars("HOLODECK_TOKEN"),
				Destination: &token,
			},
		},
	)

	return &cli.Command{
		Name:  "rank",
		Usage: "Run one top utilizer ranking and write it as CSV",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			req, err := loadRankRequest(requestPath)
			if err != nil {
				return err
			}

			logger.Info("Running top utilizer ranking",
				slog.Any("lattice", latticeCfg),
				slog.Any("redis", redisCfg),
				slog.String("entitySetId", req.EntitySetID.String()),
				slog.Int("numResults", req.NumResults),
			)

			client, err := latticeCfg.Configure()
			if err != nil {
				return err
			}

			cache, closeCache, err := redisCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			ctx = model.WithAuthContext(ctx, &model.AuthContext{Token: token})

			// Neighbors are only needed by an interactive session
			noDispatch := func(context.Context, func(context.Context) error) {}

			uc := usecase.NewTopUtilizersUseCase(
				client,
				repository.NewMemory(),
				usecase.NewDataModelUseCase(client, cache, redisCfg.EDMCacheTTL),
				usecase.NewWorkspaces(),
				usecase.WithDispatcher(noDispatch),
			)

			report, err := uc.Run(ctx, req)
			if err != nil {
				return err
			}

			if err := writeReport(outputPath, report); err != nil {
				return err
			}

			logger.Info("Top utilizer ranking completed",
				slog.String("reportId", report.ID.String()),
				slog.Int("rows", len(report.Rows)),
			)
			return nil
		},
	}
}

// writeReport writes the report as CSV to path, or to stdout when path is empty
func writeReport(path string, report *model.Report) (err error) {
	var w io.Writer = os.Stdout
	if path != "" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return goerr.Wrap(cerr, "failed to create output file", goerr.V("path", path))
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = goerr.Wrap(cerr, "failed to close output file", goerr.V("path", path))
			}
		}()
		w = f
	}

	fields, rows := usecase.ReportTable(report)
	if err := usecase.WriteCSV(w, fields, rows); err != nil {
		return goerr.Wrap(err, "failed to write report", goerr.V("path", path))
	}
	return nil
}

func loadRankRequest(path string) (*model.TopUtilizerRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request file", goerr.V("path", path))
	}

	var req model.TopUtilizerRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, goerr.Wrap(err, "failed to parse request file",
			goerr.V("path", path),
			goerr.T(model.ErrTagValidation))
	}
	return &req, nil
}
