package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. HARI_LOG_LEVEL.
const EnvPrefix = "HARI"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads the YAML file at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("sheet.name", cfg.Sheet.Name)
	v.SetDefault("sheet.header_rows", cfg.Sheet.HeaderRows)
	v.SetDefault("sheet.columns.id", cfg.Sheet.Columns.ID)
	v.SetDefault("sheet.columns.date", cfg.Sheet.Columns.Date)
	v.SetDefault("sheet.columns.time", cfg.Sheet.Columns.Time)
	v.SetDefault("sheet.columns.text", cfg.Sheet.Columns.Text)
	v.SetDefault("sheet.date_layouts", cfg.Sheet.DateLayouts)
	v.SetDefault("sheet.entry_pattern", cfg.Sheet.EntryPattern)
	v.SetDefault("sheet.csv_comma", cfg.Sheet.CSVComma)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("log.level", cfg.Log.Level)
}

// Validate checks the settings the rest of the program relies on.
func (c *Config) Validate() error {
	if c.Sheet.HeaderRows < 0 {
		return fmt.Errorf("%w: sheet.header_rows must not be negative", ErrInvalidConfig)
	}

	cols := c.Sheet.Columns
	for name, idx := range map[string]int{"id": cols.ID, "date": cols.Date, "time": cols.Time, "text": cols.Text} {
		if idx < 0 {
			return fmt.Errorf("%w: sheet.columns.%s must not be negative", ErrInvalidConfig, name)
		}
	}

	if len(c.Sheet.DateLayouts) == 0 {
		return fmt.Errorf("%w: sheet.date_layouts is empty", ErrInvalidConfig)
	}

	re, err := regexp.Compile(c.Sheet.EntryPattern)
	if err != nil {
		return fmt.Errorf("%w: sheet.entry_pattern: %v", ErrInvalidConfig, err)
	}
	if re.NumSubexp() != 1 {
		return fmt.Errorf("%w: sheet.entry_pattern needs exactly one capture group", ErrInvalidConfig)
	}

	if len([]rune(c.Sheet.CSVComma)) != 1 {
		return fmt.Errorf("%w: sheet.csv_comma must be a single character", ErrInvalidConfig)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: output.format %q (expected text|json)", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}
