package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noobping/ing2qif/internal/buildinfo"
)

// NewRootCommand creates the ing2qif CLI. The root command itself
// performs the conversion; subcommands cover auxiliary reports.
func NewRootCommand() *cobra.Command {
	opts := &convertOptions{}

	rootCmd := &cobra.Command{
		Use:     "ing2qif CSV_FILE",
		Short:   "Convert ING CSV banking statements to QIF format for GnuCash",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), args[0], opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVar(&opts.start, "start", 1, "1-based statement to start conversion at")
	rootCmd.Flags().IntVar(&opts.number, "number", 0, "number of statements to convert (0 = all)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "write QIF to file instead of stdout")
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "conversion profile (YAML)")
	rootCmd.Flags().StringVar(&opts.format, "format", "", "input format (overrides profile)")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newStatsCommand())

	return rootCmd
}
