// Command gsearch searches the web through the Google Custom Search API and
// prints, exports, or downloads the results.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/gsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gsearch/internal/adapters/driven/fetch"
	"github.com/custodia-labs/gsearch/internal/adapters/driven/google"
	"github.com/custodia-labs/gsearch/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/gsearch/internal/adapters/driving/progress"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/core/services"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	_ = logger.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	lookup, err := file.WithDotEnv(os.LookupEnv)
	if err != nil {
		return err
	}

	cli.SetVersion(version)
	cli.SetFactories(openStore, newServiceFactory(ctx, lookup, os.Stderr))
	return cli.Execute(ctx)
}

func openStore(dir string) (driven.ConfigStore, error) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	return store, nil
}

// newServiceFactory wires the adapters once the configuration is known.
// Progress is rendered on progressOut.
func newServiceFactory(ctx context.Context, lookup file.EnvLookup, progressOut io.Writer) cli.ServiceFactory {
	return func(store driven.ConfigStore) (*cli.Services, error) {
		cfg, err := file.LoadConfig(store, lookup)
		if err != nil {
			return nil, err
		}
		if cfg.LogFile != "" {
			logger.EnableFile(cfg.LogFile)
		}

		engine, err := google.NewEngine(ctx, cfg)
		if err != nil {
			return nil, err
		}

		fetcher := fetch.NewFetcher(fetch.Options{
			Timeout:   cfg.DownloadTimeout,
			UserAgent: cfg.UserAgent,
			RateLimit: fetch.RateLimitConfig{
				RequestsPerSecond: cfg.DownloadRate,
				BurstSize:         cfg.DownloadBurst,
			},
		})
		downloader := services.NewBatchDownloader(
			fetcher,
			filesystem.NewStore(),
			progress.New(progressOut),
			cfg.Concurrency,
		)

		return &cli.Services{
			Search:       services.NewSearchService(engine, cfg),
			Download:     downloader,
			DefaultQuery: cfg.DefaultQuery,
		}, nil
	}
}
