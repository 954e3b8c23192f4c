package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/evanschultz/rfc-glossary/pkg/config"
	"github.com/evanschultz/rfc-glossary/pkg/logger"
)

var (
	cfgFile  string
	jsonLogs bool
	logLevel string

	// cfg is populated by the root PersistentPreRunE.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rfc-glossary",
	Short: "Browse and apply the RFC articles terminology catalog",
	Long: `rfc-glossary is the terminology knowledge base behind the RFC articles site.

It resolves free-text mentions to canonical glossary entries, browses terms
by category and related terms, and filters articles by tag facets.

Examples:
  rfc-glossary                     # open the terminal browser
  rfc-glossary lookup HTTP/1.0     # resolve and render a term
  rfc-glossary list -c security    # terms in one category
  rfc-glossary tags -s transport   # tag facets with a selection
  rfc-glossary annotate draft.md   # resolve [[mentions]] in an article
  rfc-glossary lint                # duplicate ids and dangling relations`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runBrowse,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./rfc-glossary.yaml or ~/.config/rfc-glossary/)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit JSON log lines")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(lintCmd)
}

// setup loads the configuration, lets flags override it and initialises
// the logger. The browser owns the terminal, so it only logs to log.file.
func setup(cmd *cobra.Command, args []string) error {
	v := config.New(cfgFile)
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("log.json", flags.Lookup("json-logs")); err != nil {
		return errors.Wrap(err, "bind --json-logs")
	}
	if flags.Changed("log-level") {
		v.Set("log.level", logLevel)
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	interactive := !cmd.HasParent() || cmd.Name() == browseCmd.Name()
	opts, enabled := cfg.LoggerOptions(interactive)
	if !enabled {
		logger.Discard()
		return nil
	}
	if err := logger.Initialize(opts); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
