package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `View and edit settings stored in config.toml.

Credentials are never stored here: GOOGLE_API_KEY and SEARCH_ENGINE_ID
come from the environment or a .env file.`,
	RunE: runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and write it to config.toml.

Known keys:
  search.endpoint            Custom Search API base URL
  search.timeout_seconds     timeout for the search request
  search.default_query       query used when none is given
  downloads.timeout_seconds  timeout for each download
  downloads.rate_per_second  download rate limit (0 = unlimited)
  downloads.burst            download burst size
  downloads.concurrency      parallel downloads (1 = sequential)
  downloads.user_agent       User-Agent header for downloads
  log.file                   also write a JSON log to this file`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	store, err := ensureStore()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), store.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := ensureStore()
	if err != nil {
		return err
	}

	val, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("%s is not set", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	if !slices.Contains(file.KnownKeys, key) {
		return fmt.Errorf("unknown key %q (see gsearch config set --help)", key)
	}

	value, err := file.ParseValue(key, raw)
	if err != nil {
		return err
	}

	store, err := ensureStore()
	if err != nil {
		return err
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, raw)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	store, err := ensureStore()
	if err != nil {
		return err
	}

	keys := store.Keys()
	if len(keys) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No settings in %s\n", store.Path())
		return nil
	}
	for _, key := range keys {
		val, _ := store.Get(key)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, val)
	}
	return nil
}
