// Package atlas wires the gate-access register: configuration, SQLite
// persistence, and the registry core.  The embedding application (the
// UI layer) calls Open once and talks to the returned Registry.
package atlas

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/kofasentinel/atlas/clock"
	"github.com/kofasentinel/atlas/config"
	dbpkg "github.com/kofasentinel/atlas/internal/db"
	"github.com/kofasentinel/atlas/logger"
	"github.com/kofasentinel/atlas/metrics"
	"github.com/kofasentinel/atlas/registry"
	"github.com/kofasentinel/atlas/store"
	"github.com/kofasentinel/atlas/store/sqlite"
)

// Options overrides pieces of the default wiring.  Zero value is fine.
type Options struct {
	Logger  *zerolog.Logger       // nil builds one from the config
	Metrics prometheus.Registerer // nil keeps counters isolated
	Clock   clock.Clock           // nil uses the system clock
}

// App is an opened register.  Close releases the database.
type App struct {
	Registry *registry.Registry

	conn   *sql.DB
	writer *dbpkg.Worker
}

// Open loads the SQLite store at cfg.DBPath (creating and migrating it
// as needed), seeds the sample profiles when configured and the store
// is empty, and returns the wired registry.
func Open(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		l := logger.New(logger.Options{
			Service: "atlas",
			Level:   cfg.LogLevel,
			Console: cfg.LogConsole,
		})
		log = &l
	}

	conn, err := dbpkg.Open(ctx, dbpkg.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("open register db: %w", err)
	}
	writer := dbpkg.NewWorker(conn)
	st := sqlite.New(conn, writer)

	if cfg.SeedSampleData {
		if err := store.SeedIfEmpty(ctx, st, time.Now()); err != nil {
			writer.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("seed sample data: %w", err)
		}
	}

	reg := registry.New(registry.Deps{
		Store:   st,
		Clock:   opts.Clock,
		Logger:  log,
		Metrics: metrics.New(opts.Metrics),
	})

	log.Info().Str("db_path", cfg.DBPath).Str("env", cfg.Env).Msg("register opened")

	return &App{Registry: reg, conn: conn, writer: writer}, nil
}

func (a *App) Close() error {
	a.writer.Close()
	return a.conn.Close()
}
