package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultConfig returns the layout of the legacy event export: id, date and
// time in the first three columns and the free text in the sixth.
func DefaultConfig() *Config {
	return &Config{
		Sheet: SheetConfig{
			HeaderRows: 1,
			Columns: ColumnsConfig{
				ID:   0,
				Date: 1,
				Time: 2,
				Text: 5,
			},
			DateLayouts:  []string{"02-01-2006", "2006-01-02"},
			EntryPattern: `Ent\((\d+)\)`,
			CSVComma:     ",",
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

const defaultHeader = `# hari configuration
# Column indexes are 0-based. Environment variables override any key,
# e.g. HARI_LOG_LEVEL=debug or HARI_SHEET_HEADER_ROWS=2.
`

// DefaultYAML renders DefaultConfig with an explanatory header.
func DefaultYAML() ([]byte, error) {
	body, err := Marshal(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return append([]byte(defaultHeader), body...), nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
