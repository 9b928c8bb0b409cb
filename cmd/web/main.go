package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/myrjola/gavel/internal/casegen"
	"github.com/myrjola/gavel/internal/catalog"
	"github.com/myrjola/gavel/internal/envstruct"
	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/game"
	"github.com/myrjola/gavel/internal/logging"
	"github.com/myrjola/gavel/internal/pprofserver"
	"github.com/myrjola/gavel/internal/repositories"
	"github.com/myrjola/gavel/internal/sqlite"
)

type config struct {
	// Addr is the address the server listens on, e.g. "localhost:4000".
	// Use port 0 to pick a free port.
	Addr string `env:"GAVEL_ADDR" envDefault:"localhost:4000"`
	// SQLiteURL is the path to the SQLite database file or ":memory:".
	SQLiteURL string `env:"GAVEL_SQLITE_URL" envDefault:"./gavel.sqlite"`
	// PprofAddr is the localhost address for the pprof server. Empty
	// disables it.
	PprofAddr string `env:"GAVEL_PPROF_ADDR" envDefault:""`
}

type application struct {
	logger  *slog.Logger
	session *game.Session
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse config")
	}

	if cfg.PprofAddr != "" {
		// pprof listens on localhost only so that it's not open to the world.
		pprofserver.Launch(cfg.PprofAddr, logger)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SQLiteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SQLiteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close database", errors.SlogError(closeErr))
		}
	}()

	cat := catalog.New(logger)
	repos := repositories.New(db, logger)
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed))

	session, err := game.NewSession(ctx, cat, casegen.NewBuilder(cat), repos, logger, rng)
	if err != nil {
		return errors.Wrap(err, "initialize session")
	}

	app := application{
		logger:  logger,
		session: session,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := run(context.Background(), logger, os.LookupEnv); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
