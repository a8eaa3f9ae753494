package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noobping/ing2qif/internal/model"
)

// Config is an optional conversion profile. It maps a bank export
// layout onto the converter's logical fields.
type Config struct {
	Format    string        `yaml:"format"`
	Delimiter string        `yaml:"delimiter"`
	Columns   ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig names the source columns for each logical field.
type ColumnsConfig struct {
	Date         string `yaml:"date"`
	Amount       string `yaml:"amount"`
	Direction    string `yaml:"direction"`
	Kind         string `yaml:"kind"`
	Narrative    string `yaml:"narrative"`
	Counterparty string `yaml:"counterparty"`
}

// Load reads a profile from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a profile to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the profile for ING CSV exports.
func Default() *Config {
	cols := model.DefaultColumns()
	return &Config{
		Format:    "ing",
		Delimiter: ";",
		Columns: ColumnsConfig{
			Date:         cols.Date,
			Amount:       cols.Amount,
			Direction:    cols.Direction,
			Kind:         cols.Kind,
			Narrative:    cols.Narrative,
			Counterparty: cols.Counterparty,
		},
	}
}

// ModelColumns converts the profile to model.Columns, falling back to
// the ING defaults for unset names.
func (c *Config) ModelColumns() model.Columns {
	cols := model.DefaultColumns()
	if c.Columns.Date != "" {
		cols.Date = c.Columns.Date
	}
	if c.Columns.Amount != "" {
		cols.Amount = c.Columns.Amount
	}
	if c.Columns.Direction != "" {
		cols.Direction = c.Columns.Direction
	}
	if c.Columns.Kind != "" {
		cols.Kind = c.Columns.Kind
	}
	if c.Columns.Narrative != "" {
		cols.Narrative = c.Columns.Narrative
	}
	if c.Columns.Counterparty != "" {
		cols.Counterparty = c.Columns.Counterparty
	}
	return cols
}

// Comma returns the configured CSV delimiter as a rune, or zero when
// unset (the parser then uses its own default).
func (c *Config) Comma() rune {
	if c.Delimiter == "" {
		return 0
	}
	return []rune(c.Delimiter)[0]
}
