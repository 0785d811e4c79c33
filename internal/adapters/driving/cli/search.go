package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

var (
	searchQuery     string
	searchFileType  string
	searchDomain    string
	searchOutputDir string
	searchUnsafe    bool
	searchJSON      bool
	searchEnumerate bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&searchQuery, "query", "q", "", "search query")
	flags.StringVarP(&searchFileType, "filetype", "f", "", "restrict results to a file type (e.g. pdf)")
	flags.StringVarP(&searchDomain, "domain", "d", "", "restrict results to a site or domain")
	flags.StringVarP(&searchOutputDir, "output", "o", "", "download results into DIR; a value is required, use -o . or --output= for the current directory")
	flags.BoolVar(&searchUnsafe, "unsafe", false, "download any content type, not just the allow-list")
	flags.BoolVar(&searchJSON, "json", false, "output results as JSON")
	flags.BoolVar(&searchEnumerate, "enumerate", false, "number results in JSON output (implies --json)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	results, err := searchService.Search(cmd.Context(), domain.SearchQuery{
		Text:     resolveQuery(args),
		FileType: searchFileType,
		Domain:   searchDomain,
	})
	if err != nil {
		return err
	}

	return present(cmd, results, presentOptionsFromFlags(cmd))
}

// resolveQuery picks --query, then the positional argument, then the
// configured default query.
func resolveQuery(args []string) string {
	if searchQuery != "" {
		return searchQuery
	}
	if len(args) > 0 {
		return args[0]
	}
	return defaultQuery
}

func presentOptionsFromFlags(cmd *cobra.Command) presentOptions {
	opts := presentOptions{
		mode:      modeConsole,
		enumerate: searchEnumerate,
		outputDir: searchOutputDir,
		unsafe:    searchUnsafe,
	}

	switch {
	case cmd.Flags().Changed("output"):
		opts.mode = modeDownload
	case searchJSON || searchEnumerate:
		opts.mode = modeJSON
	}
	return opts
}
