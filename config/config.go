// Package config reads the application settings that PocketBase's own
// command line flags do not cover.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds runtime settings loaded from the environment.
type Config struct {
	CompanyName  string
	SeedDemo     bool
	TopCount     int
	PDFRowsLimit int
}

// Load reads optional .env files and then the environment. Missing files are
// not an error; a malformed value is.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env.local", ".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("config: could not load %s: %v", f, err)
		}
	}

	cfg := Config{
		CompanyName: strings.TrimSpace(os.Getenv("RAUMBUCH_COMPANY_NAME")),
	}

	var err error
	if cfg.SeedDemo, err = envBool("RAUMBUCH_SEED_DEMO", true); err != nil {
		return Config{}, err
	}
	if cfg.TopCount, err = envInt("RAUMBUCH_TOP_COUNT", 5); err != nil {
		return Config{}, err
	}
	if cfg.PDFRowsLimit, err = envInt("RAUMBUCH_PDF_ROWS_LIMIT", 0); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the handlers cannot work with.
func (c Config) Validate() error {
	if c.TopCount < 1 {
		return errors.New("RAUMBUCH_TOP_COUNT must be at least 1")
	}
	if c.PDFRowsLimit < 0 {
		return errors.New("RAUMBUCH_PDF_ROWS_LIMIT must not be negative")
	}
	return nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
