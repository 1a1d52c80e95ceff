package config

import (
	"fmt"
	"os"

	"csv-formatter/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Default returns the built-in configuration: the fixed contact-list column sets,
// empty-string-only missing values and JSON logs at info level.
func Default() *models.Config {
	return &models.Config{
		Columns: models.ColumnsConfig{
			Keep:   models.DefaultKeepColumns(),
			Phone:  models.DefaultPhoneColumns(),
			Output: models.PhoneNumberColumn,
		},
		Input: models.InputConfig{
			MissingValues: []string{""},
		},
		Output: models.OutputConfig{
			Prefix: models.DefaultOutputPrefix,
		},
		Logging: models.LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the configuration from the specified YAML file and returns a Config struct.
// Keys missing from the file keep their default values.
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath, err)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filepath, err)
	}

	return config, nil
}

// Validate checks that the column sets are usable and the logging settings are known
func Validate(cfg *models.Config) error {
	if len(cfg.Columns.Phone) == 0 {
		return fmt.Errorf("columns.phone must list at least one column")
	}
	if cfg.Columns.Output == "" {
		return fmt.Errorf("columns.output must not be empty")
	}

	seen := make(map[string]string, len(cfg.Columns.Keep)+len(cfg.Columns.Phone))
	check := func(set string, names []string) error {
		for _, name := range names {
			if name == "" {
				return fmt.Errorf("columns.%s contains an empty column name", set)
			}
			if prev, ok := seen[name]; ok {
				return fmt.Errorf("column %q listed in columns.%s and columns.%s", name, prev, set)
			}
			seen[name] = set
		}
		return nil
	}
	if err := check("keep", cfg.Columns.Keep); err != nil {
		return err
	}
	if err := check("phone", cfg.Columns.Phone); err != nil {
		return err
	}
	if _, ok := seen[cfg.Columns.Output]; ok {
		return fmt.Errorf("columns.output %q collides with a kept or phone column", cfg.Columns.Output)
	}

	if _, err := logrus.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", cfg.Logging.Format)
	}

	return nil
}
