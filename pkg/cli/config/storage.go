package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/complia-lab/themis/pkg/domain/interfaces"
	"github.com/complia-lab/themis/pkg/repository"
)

// Storage holds storage backend configuration. Firestore wins when a
// project is set, then SQLite when a path is set; otherwise data lives
// in memory and is lost on shutdown.
type Storage struct {
	FirestoreProject  string
	FirestoreDatabase string
	SQLitePath        string
}

// Flags returns CLI flags for Storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Storage",
			Sources:     cli.EnvVars("THEMIS_FIRESTORE_PROJECT"),
			Destination: &s.FirestoreProject,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Storage",
			Value:       "(default)",
			Sources:     cli.EnvVars("THEMIS_FIRESTORE_DATABASE"),
			Destination: &s.FirestoreDatabase,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "SQLite database file path",
			Category:    "Storage",
			Sources:     cli.EnvVars("THEMIS_SQLITE_PATH"),
			Destination: &s.SQLitePath,
		},
	}
}

// Configure creates the repository for the configured backend
func (s *Storage) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	if s.FirestoreProject != "" {
		repo, err := repository.NewFirestore(ctx, s.FirestoreProject, s.FirestoreDatabase)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore",
				goerr.V("project", s.FirestoreProject),
				goerr.V("database", s.FirestoreDatabase),
			)
		}
		return repo, nil
	}

	if s.SQLitePath != "" {
		repo, err := repository.NewSQLite(ctx, s.SQLitePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init sqlite",
				goerr.V("path", s.SQLitePath),
			)
		}
		return repo, nil
	}

	logger.Warn("Using memory database. The data will be removed when shutting down")
	return repository.NewMemory(), nil
}

// LogValue returns structured log value
func (s Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("firestoreProject", s.FirestoreProject),
		slog.String("firestoreDatabase", s.FirestoreDatabase),
		slog.String("sqlitePath", s.SQLitePath),
	)
}
