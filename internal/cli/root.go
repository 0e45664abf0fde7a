// Package cli implements the issuefinder command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognicore/issuefinder/internal/logger"
	"github.com/cognicore/issuefinder/pkg/issuefinder/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	configPath         string
	stopwordsPath      string
	allowExtensionOnly bool
	verbose            bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "issuefinder",
		Short: "Keyword and co-occurrence analysis for news corpora",
		Long: `issuefinder extracts the most frequent keywords of a news corpus and the
graph of keywords that appear together in the same article. The results
feed word cloud and keyword network renderers.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(opts.verbose)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (.yaml or .toml)")
	root.PersistentFlags().StringVar(&opts.stopwordsPath, "stopwords", "", "newline-delimited stopword list")
	root.PersistentFlags().BoolVar(&opts.allowExtensionOnly, "allow-extension-only", false, "use only the built-in stopwords when the list is missing")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print progress to stderr")

	root.AddCommand(newAnalyzeCmd(opts))
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newSuggestCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersionInfo records build metadata for the version command.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "issuefinder %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// loadConfig resolves the config file, environment and global flags.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if o.stopwordsPath != "" {
		cfg.Stopwords.Path = o.stopwordsPath
	}
	if o.allowExtensionOnly {
		cfg.Stopwords.AllowExtensionOnly = true
	}
	return cfg, nil
}

// buildComponents loads the stopword list once for the whole command.
func buildComponents(cfg *config.Config) (*config.Components, error) {
	comp, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if comp.StopwordsFallback {
		logger.Warn("stopword list %q unavailable, using %d built-in stopwords", cfg.Stopwords.Path, comp.Stopwords.Len())
	} else {
		logger.Info("loaded %d stopwords", comp.Stopwords.Len())
	}
	return comp, nil
}
