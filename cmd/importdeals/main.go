// Command importdeals exports every deal row from the Postgres backend into
// the local JSON data file, snapshotting the current file first. Without
// --confirm it reports what it would write and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coursespeak/coursespeak/internal/config"
	"github.com/coursespeak/coursespeak/internal/database"
	"github.com/coursespeak/coursespeak/internal/logger"
	"github.com/coursespeak/coursespeak/internal/store"
	"github.com/coursespeak/coursespeak/internal/syncdeals"
)

func main() {
	confirm := flag.Bool("confirm", false, "actually overwrite the local data file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logg, err := logger.New(cfg.App.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logg.Sync()

	db, err := database.NewDB(ctx, cfg)
	if err != nil {
		logg.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	deals, err := store.NewPostgresStore(db.Postgres).ReadAll(ctx)
	if err != nil {
		logg.Error("failed to read deals from database", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d deals in Postgres\n", len(deals))

	if !*confirm {
		fmt.Println("Dry run; pass --confirm to overwrite", cfg.Store.DataFile)
		return
	}

	ts := syncdeals.Timestamp()
	if _, err := syncdeals.SnapshotCurrent(cfg.Store.DataFile, cfg.Store.BackupDir, ts); err != nil {
		logg.Error("failed to snapshot current data", "error", err)
		os.Exit(1)
	}
	if err := syncdeals.Save(deals, cfg.Store.DataFile, cfg.Store.BackupDir, ts); err != nil {
		logg.Error("failed to save deals", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Synced %d deals to %s\n", len(deals), cfg.Store.DataFile)
}
