// Command syncdeals pulls the full deal collection from a live deployment's
// public API and replaces the local JSON data file, snapshotting the current
// file first. Without --confirm it runs as a dry run: fetch, validate, report,
// write nothing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/coursespeak/coursespeak/internal/config"
	"github.com/coursespeak/coursespeak/internal/logger"
	"github.com/coursespeak/coursespeak/internal/syncdeals"
)

func main() {
	var (
		baseURL = flag.String("url", "https://coursespeak.com", "live site base URL")
		pages   = flag.Int("pages", 0, "maximum pages to fetch (0 = default cap)")
		confirm = flag.Bool("confirm", false, "actually overwrite the local data file")
	)
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

	base := strings.TrimRight(*baseURL, "/")
	if !strings.HasPrefix(base, "http") {
		base = "https://" + base
	}

	logg.Info("syncing deals from live site", "url", base, "dry_run", !*confirm)

	client := syncdeals.NewClient(base, logg)
	deals, err := client.FetchAll(ctx, *pages)
	if err != nil {
		logg.Error("sync failed", "error", err)
		os.Exit(1)
	}
	if len(deals) == 0 {
		logg.Error("no deals found on live site")
		os.Exit(1)
	}
	if err := syncdeals.Validate(deals); err != nil {
		logg.Error("invalid deals data, aborting sync", "error", err)
		os.Exit(1)
	}

	providers, categories := syncdeals.Summarize(deals)
	fmt.Printf("Fetched %d deals from %s\n", len(deals), base)
	fmt.Println("Top providers:")
	printTop(providers, 5)
	fmt.Println("Top categories:")
	printTop(categories, 5)

	if !*confirm {
		fmt.Println("Dry run; pass --confirm to overwrite", cfg.Store.DataFile)
		return
	}

	ts := syncdeals.Timestamp()
	previous, err := syncdeals.SnapshotCurrent(cfg.Store.DataFile, cfg.Store.BackupDir, ts)
	if err != nil {
		logg.Error("failed to snapshot current data", "error", err)
		os.Exit(1)
	}
	if err := syncdeals.Save(deals, cfg.Store.DataFile, cfg.Store.BackupDir, ts); err != nil {
		logg.Error("failed to save synced deals", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %d deals to %s (previously %d, difference %+d)\n",
		len(deals), cfg.Store.DataFile, previous, len(deals)-previous)
}

func printTop(counts []syncdeals.Count, n int) {
	for i, c := range counts {
		if i >= n {
			break
		}
		fmt.Printf("  %s: %d\n", c.Name, c.Count)
	}
}
