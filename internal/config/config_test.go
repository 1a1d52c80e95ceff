package config

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"csv-formatter/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	_ = tmpFile.Close()

	return tmpFile.Name()
}

func TestLoad(t *testing.T) {
	yamlContent := `columns:
  keep:
    - OWNER_FIRST_NAME
    - OWNER_LAST_NAME
  phone:
    - Phone1_Number
    - Phone2_Number
  output: Phone
input:
  missingValues: ["", "NA"]
output:
  prefix: "Clean_"
  crlf: true
logging:
  level: debug
  format: text
`

	cfg, err := Load(writeConfig(t, yamlContent))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Columns.Keep) != 2 || cfg.Columns.Keep[1] != "OWNER_LAST_NAME" {
		t.Errorf("Expected 2 keep columns ending in OWNER_LAST_NAME, got %v", cfg.Columns.Keep)
	}

	if len(cfg.Columns.Phone) != 2 {
		t.Errorf("Expected 2 phone columns, got %d", len(cfg.Columns.Phone))
	}

	if cfg.Columns.Output != "Phone" {
		t.Errorf("Expected output column 'Phone', got '%s'", cfg.Columns.Output)
	}

	if !reflect.DeepEqual(cfg.Input.MissingValues, []string{"", "NA"}) {
		t.Errorf("Expected missing values [\"\" NA], got %q", cfg.Input.MissingValues)
	}

	if cfg.Output.Prefix != "Clean_" {
		t.Errorf("Expected prefix 'Clean_', got '%s'", cfg.Output.Prefix)
	}

	if !cfg.Output.CRLF {
		t.Error("Expected crlf to be true")
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Expected debug/text logging, got %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logging:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !reflect.DeepEqual(cfg.Columns.Keep, models.DefaultKeepColumns()) {
		t.Errorf("Expected default keep columns, got %v", cfg.Columns.Keep)
	}

	if !reflect.DeepEqual(cfg.Columns.Phone, models.DefaultPhoneColumns()) {
		t.Errorf("Expected default phone columns, got %v", cfg.Columns.Phone)
	}

	if cfg.Columns.Output != models.PhoneNumberColumn {
		t.Errorf("Expected output column %s, got %s", models.PhoneNumberColumn, cfg.Columns.Output)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected level warn, got %s", cfg.Logging.Level)
	}

	if cfg.Logging.Format != "json" {
		t.Errorf("Expected default json format, got %s", cfg.Logging.Format)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoad_Malformed(t *testing.T) {
	if _, err := Load(writeConfig(t, "columns: [unclosed")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Columns.Keep) != 19 {
		t.Errorf("Expected 19 keep columns, got %d", len(cfg.Columns.Keep))
	}

	if len(cfg.Columns.Phone) != 10 {
		t.Fatalf("Expected 10 phone columns, got %d", len(cfg.Columns.Phone))
	}

	if cfg.Columns.Phone[0] != "Phone1_Number" || cfg.Columns.Phone[9] != "Phone10_Number" {
		t.Errorf("Unexpected phone columns: %v", cfg.Columns.Phone)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}

	// Defaults are handed out as copies
	cfg.Columns.Keep[0] = "changed"
	if Default().Columns.Keep[0] != "Input_Property_Address" {
		t.Error("Expected Default() to be unaffected by caller mutation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *models.Config)
		wantErr string
	}{
		{
			name:    "No phone columns",
			mutate:  func(cfg *models.Config) { cfg.Columns.Phone = nil },
			wantErr: "columns.phone",
		},
		{
			name:    "Empty output column",
			mutate:  func(cfg *models.Config) { cfg.Columns.Output = "" },
			wantErr: "columns.output",
		},
		{
			name:    "Duplicate keep column",
			mutate:  func(cfg *models.Config) { cfg.Columns.Keep = append(cfg.Columns.Keep, "Email1") },
			wantErr: "Email1",
		},
		{
			name:    "Column in both sets",
			mutate:  func(cfg *models.Config) { cfg.Columns.Keep = append(cfg.Columns.Keep, "Phone3_Number") },
			wantErr: "Phone3_Number",
		},
		{
			name:    "Output collides with kept column",
			mutate:  func(cfg *models.Config) { cfg.Columns.Output = "EQUITY" },
			wantErr: "collides",
		},
		{
			name:    "Empty column name",
			mutate:  func(cfg *models.Config) { cfg.Columns.Phone = []string{""} },
			wantErr: "empty column name",
		},
		{
			name:    "Unknown log level",
			mutate:  func(cfg *models.Config) { cfg.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "Unknown log format",
			mutate:  func(cfg *models.Config) { cfg.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
