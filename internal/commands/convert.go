package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/noobping/ing2qif/internal/config"
	"github.com/noobping/ing2qif/internal/importer"
	"github.com/noobping/ing2qif/internal/logger"
	"github.com/noobping/ing2qif/internal/model"
	"github.com/noobping/ing2qif/internal/qif"
)

type convertOptions struct {
	start      int
	number     int
	output     string
	configPath string
	format     string
	verbose    bool
}

func runConvert(stdout io.Writer, csvPath string, opts *convertOptions) error {
	log := logger.New(opts.verbose)

	cfg, err := loadProfile(opts.configPath)
	if err != nil {
		return err
	}

	format := cfg.Format
	if opts.format != "" {
		format = opts.format
	}

	records, err := readRecords(csvPath, format, cfg)
	if err != nil {
		return err
	}
	log.Debug().Int("rows", len(records)).Str("file", csvPath).Msg("statement read")

	batch, err := qif.Build(records, cfg.ModelColumns(), qif.Options{
		Start:  opts.start,
		Number: opts.number,
	})
	if err != nil {
		return err
	}
	log.Debug().Int("entries", batch.Len()).Msg("batch built")

	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if _, err := fmt.Fprintln(out, batch.Serialize()); err != nil {
		return fmt.Errorf("writing QIF: %w", err)
	}
	return nil
}

// loadProfile returns the configured profile, or the ING defaults when
// no path is given.
func loadProfile(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func readRecords(path, format string, cfg *config.Config) ([]model.RawRecord, error) {
	p := importer.DefaultRegistry().Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	if ing, ok := p.(*importer.INGParser); ok {
		ing.Comma = cfg.Comma()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	records, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
