package config

// Config is the full hari configuration.
type Config struct {
	Sheet  SheetConfig  `yaml:"sheet" mapstructure:"sheet"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SheetConfig describes how event rows are laid out in a workbook.
type SheetConfig struct {
	// Name selects a worksheet; empty means the first one.
	Name string `yaml:"name" mapstructure:"name"`

	// HeaderRows is the number of leading rows skipped before data.
	HeaderRows int `yaml:"header_rows" mapstructure:"header_rows"`

	Columns ColumnsConfig `yaml:"columns" mapstructure:"columns"`

	// DateLayouts are tried in order for the date column.
	DateLayouts []string `yaml:"date_layouts" mapstructure:"date_layouts"`

	// EntryPattern extracts the entry id from the text column. It must have
	// exactly one capture group.
	EntryPattern string `yaml:"entry_pattern" mapstructure:"entry_pattern"`

	// CSVComma is the field separator for .csv input.
	CSVComma string `yaml:"csv_comma" mapstructure:"csv_comma"`
}

// ColumnsConfig holds 0-based column indexes.
type ColumnsConfig struct {
	ID   int `yaml:"id" mapstructure:"id"`
	Date int `yaml:"date" mapstructure:"date"`
	Time int `yaml:"time" mapstructure:"time"`
	Text int `yaml:"text" mapstructure:"text"`
}

// OutputConfig controls report presentation.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}
