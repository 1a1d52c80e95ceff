package models

// Config represents the application configuration
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ColumnsConfig holds the column sets the reshape engine works with
type ColumnsConfig struct {
	Keep   []string `yaml:"keep"`
	Phone  []string `yaml:"phone"`
	Output string   `yaml:"output"`
}

// InputConfig controls how source values are interpreted
type InputConfig struct {
	// MissingValues lists the raw cell values treated as "no phone number".
	MissingValues []string `yaml:"missingValues"`
}

// OutputConfig controls where and how the reshaped table is written
type OutputConfig struct {
	Prefix string `yaml:"prefix"`
	CRLF   bool   `yaml:"crlf"`
}

// LoggingConfig represents logger settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
