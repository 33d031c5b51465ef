package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore holds the report storage configuration
type Firestore struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID of the report store (if not set, reports are kept in memory)",
			Category:    "Report storage",
			Sources:     cli.EnvVars("HOLODECK_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Report storage",
			Value:       "(default)",
			Sources:     cli.EnvVars("HOLODECK_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Collection holding top utilizer reports",
			Category:    "Report storage",
			Value:       repository.DefaultReportsCollection,
			Sources:     cli.EnvVars("HOLODECK_FIRESTORE_COLLECTION"),
			Destination: &f.Collection,
		},
	}
}

// Configure creates the report repository. Reports live in memory unless a project
// is set.
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Warn("No firestore project, reports are lost on shutdown")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID,
		repository.WithCollection(f.Collection))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init report store",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
			goerr.V("collection", f.Collection),
		)
	}
	return repo, nil
}

// IsConfigured reports whether reports are persisted
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
		slog.String("collection", f.Collection),
	)
}
