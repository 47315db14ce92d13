package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var envKeys = []string{
	"RAUMBUCH_COMPANY_NAME",
	"RAUMBUCH_SEED_DEMO",
	"RAUMBUCH_TOP_COUNT",
	"RAUMBUCH_PDF_ROWS_LIMIT",
}

// clearEnv unsets every setting for the test and restores it afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "does-not-exist.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(noEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{CompanyName: "", SeedDemo: true, TopCount: 5, PDFRowsLimit: 0}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("RAUMBUCH_COMPANY_NAME", "  Glanz GmbH ")
	t.Setenv("RAUMBUCH_SEED_DEMO", "false")
	t.Setenv("RAUMBUCH_TOP_COUNT", "3")
	t.Setenv("RAUMBUCH_PDF_ROWS_LIMIT", "200")

	cfg, err := Load(noEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{CompanyName: "Glanz GmbH", SeedDemo: false, TopCount: 3, PDFRowsLimit: 200}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "RAUMBUCH_COMPANY_NAME=Sauber AG\nRAUMBUCH_TOP_COUNT=7\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CompanyName != "Sauber AG" || cfg.TopCount != 7 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr string
	}{
		{"RAUMBUCH_SEED_DEMO", "vielleicht", "parse RAUMBUCH_SEED_DEMO"},
		{"RAUMBUCH_TOP_COUNT", "viele", "parse RAUMBUCH_TOP_COUNT"},
		{"RAUMBUCH_TOP_COUNT", "0", "at least 1"},
		{"RAUMBUCH_PDF_ROWS_LIMIT", "-1", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(noEnvFile(t))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
