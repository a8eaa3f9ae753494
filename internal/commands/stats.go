package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/noobping/ing2qif/internal/logger"
	"github.com/noobping/ing2qif/internal/model"
	"github.com/noobping/ing2qif/internal/stats"
)

// categoryOrder fixes the printing order of the per-category totals.
var categoryOrder = []model.Category{
	model.CategoryATM,
	model.CategoryTransfer,
	model.CategoryDeposit,
	model.CategoryNone,
}

func newStatsCommand() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "stats CSV_FILE",
		Short: "Summarize a statement without converting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), args[0], configPath, verbose)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "conversion profile (YAML)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runStats(stdout io.Writer, csvPath, configPath string, verbose bool) error {
	log := logger.New(verbose)

	cfg, err := loadProfile(configPath)
	if err != nil {
		return err
	}

	records, err := readRecords(csvPath, cfg.Format, cfg)
	if err != nil {
		return err
	}
	log.Debug().Int("rows", len(records)).Str("file", csvPath).Msg("statement read")

	sum, err := stats.Summarize(records, cfg.ModelColumns())
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Entries: %d\n", sum.Count)
	fmt.Fprintf(stdout, "Credits: %s\n", sum.Credits.StringFixed(2))
	fmt.Fprintf(stdout, "Debits:  %s\n", sum.Debits.StringFixed(2))
	fmt.Fprintf(stdout, "Net:     %s\n", sum.Net().StringFixed(2))

	for _, cat := range categoryOrder {
		total, ok := sum.ByCategory[cat]
		if !ok {
			continue
		}
		name := string(cat)
		if cat == model.CategoryNone {
			name = "Uncategorized"
		}
		fmt.Fprintf(stdout, "%-13s %s\n", name+":", total.StringFixed(2))
	}
	return nil
}
