// Package cli provides the cobra command tree for gsearch.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
	"github.com/custodia-labs/gsearch/internal/logger"
)

var version = "dev"

var (
	searchService   driving.SearchService
	downloadService driving.DownloadService
	configStore     driven.ConfigStore
	defaultQuery    string
)

var (
	configDir string
	verbose   bool
)

// Services are the core services driven by the commands.
type Services struct {
	Search       driving.SearchService
	Download     driving.DownloadService
	DefaultQuery string
}

// StoreOpener opens the configuration store in dir ("" selects ~/.gsearch).
type StoreOpener func(dir string) (driven.ConfigStore, error)

// ServiceFactory builds the services from the configuration store.
// It fails with domain.ErrConfiguration when credentials are missing.
type ServiceFactory func(store driven.ConfigStore) (*Services, error)

var (
	openStore     StoreOpener
	buildServices ServiceFactory
)

var rootCmd = &cobra.Command{
	Use:   "gsearch [query]",
	Short: "Search the web from the command line",
	Long: `gsearch queries the Google Custom Search API and prints the results.

Results can be printed as text, emitted as JSON, or downloaded into a
directory. Downloads are limited to an allow-list of file types unless
--unsafe is given. -o always takes a directory: use -o . (or --output=)
to download into the current directory.

Requires GOOGLE_API_KEY and SEARCH_ENGINE_ID in the environment or in a
.env file in the working directory.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: persistentPreRun,
	RunE:              runSearch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.gsearch)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects already built services.
func SetServices(s *Services) {
	searchService = s.Search
	downloadService = s.Download
	defaultQuery = s.DefaultQuery
}

// SetConfigStore injects the configuration store.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetFactories registers the constructors used once flags are parsed.
func SetFactories(open StoreOpener, build ServiceFactory) {
	openStore = open
	buildServices = build
}

// Execute runs the root command. Cancelling ctx aborts in-flight requests.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func persistentPreRun(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)
	return nil
}

// ensureStore opens the configuration store unless one was injected.
func ensureStore() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	if openStore == nil {
		return nil, errors.New("config store not configured")
	}

	store, err := openStore(configDir)
	if err != nil {
		return nil, err
	}
	configStore = store
	return store, nil
}

// ensureServices builds the services unless they were injected.
// Configuration errors surface here, before any network activity.
func ensureServices() error {
	if searchService != nil {
		return nil
	}
	if buildServices == nil {
		return errors.New("search service not configured")
	}

	store, err := ensureStore()
	if err != nil {
		return err
	}

	s, err := buildServices(store)
	if err != nil {
		return err
	}
	if s == nil || s.Search == nil {
		return domain.ErrConfiguration
	}
	SetServices(s)
	return nil
}
