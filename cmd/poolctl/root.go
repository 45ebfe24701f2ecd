package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/pool-logbook/backend/internal/archive"
	"github.com/pkordes/pool-logbook/backend/internal/config"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
	"github.com/pkordes/pool-logbook/backend/internal/service"
)

// app holds the services opened by the root command for its subcommands.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	backend *repo.Backend
	pools   *service.PoolService
	logs    *service.LogbookService
	stats   *service.StatsService
	export  *service.ExportService
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "poolctl",
		Short: "Pool maintenance logbook",
		Long: `poolctl manages swimming pools and their maintenance logbooks.

It reads the same environment (or .env file) as the API server:

  STORE_DRIVER   mongo (default), postgres or badger
  MONGO_URI, MONGO_DATABASE, MONGO_COLLECTION
  DATABASE_URL   for postgres
  BADGER_DIR     for badger (empty means in-memory)

QUICK START:

  $ poolctl create --owner Alice --length 10 --width 5 --depth 2 --type chlorine
  $ poolctl list
  $ poolctl log <pool-id> --date 2024-01-01 --ph 7.5 --chlorine 2
  $ poolctl show <pool-id>
  $ poolctl export --format csv > pools.csv

MCP INTEGRATION:

  Run 'poolctl mcp' to serve the logbook to MCP-compatible AI assistants
  over stdin/stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "levels" {
				return nil
			}
			return a.open(cmd.Context())
		},
	}

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newCreateCmd(a),
		newLogCmd(a),
		newLogsCmd(a),
		newDeleteLogCmd(a),
		newResetCmd(a),
		newStatsCmd(a),
		newExportCmd(a),
		newLevelsCmd(),
		newMCPCmd(a),
	)
	return root
}

// open loads configuration and connects the store. Logs go to stderr so
// stdout stays clean for command output and the MCP protocol.
func (a *app) open(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	// The CLI is quieter than the server: info-level store chatter is noise here.
	if level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	backend, err := repo.Open(ctx, cfg, a.logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	a.backend = backend

	var archiver service.Archiver
	if cfg.Archive.Enabled() {
		s3a, err := archive.NewS3Archiver(ctx, archive.Config{
			Bucket:    cfg.Archive.Bucket,
			Region:    cfg.Archive.Region,
			Endpoint:  cfg.Archive.Endpoint,
			PathStyle: cfg.Archive.PathStyle,
			Prefix:    cfg.Archive.Prefix,
		})
		if err != nil {
			return err
		}
		archiver = s3a
	}

	store := backend.Store
	a.pools = service.NewPoolService(store)
	a.logs = service.NewLogbookService(store, store)
	a.stats = service.NewStatsService(store)
	a.export = service.NewExportService(store, archiver)
	return nil
}

// close releases the store. It runs after every command, including failed
// ones, so an embedded Badger directory is never left locked.
func (a *app) close() error {
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close(context.Background())
	a.backend = nil
	return err
}

// commandContext bounds one CLI operation.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}
