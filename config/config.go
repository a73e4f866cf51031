// Package config loads themecraft settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/themecraft"
	"github.com/fwojciec/themecraft/fs"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendBolt  = "bolt"
	BackendJSONL = "jsonl"
)

// Chrome modes, shared with the chrome implementations.
const (
	ChromeAuto  = themecraft.ChromeAuto
	ChromeDark  = themecraft.ChromeDark
	ChromeLight = themecraft.ChromeLight
)

// Config holds runtime settings. Command-line flags override these values.
type Config struct {
	Backend       string // THEMECRAFT_STORE: bolt or jsonl
	DataDir       string // THEMECRAFT_DATA_DIR
	Chrome        string // THEMECRAFT_CHROME: auto, dark or light
	DebugLog      string // THEMECRAFT_DEBUG_LOG: file for editor debug logging, empty disables
	ImportWorkers int    // THEMECRAFT_IMPORT_WORKERS
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()

	cfg := Config{
		Backend:       getEnv("THEMECRAFT_STORE", BackendBolt),
		DataDir:       getEnv("THEMECRAFT_DATA_DIR", fs.DefaultDataDir()),
		Chrome:        getEnv("THEMECRAFT_CHROME", ChromeAuto),
		DebugLog:      getEnv("THEMECRAFT_DEBUG_LOG", ""),
		ImportWorkers: getEnvInt("THEMECRAFT_IMPORT_WORKERS", 4),
	}
	return cfg, cfg.Validate()
}

// Validate rejects unknown backends and chrome modes.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendBolt, BackendJSONL:
	default:
		return fmt.Errorf("unknown store backend %q (want %s or %s)", c.Backend, BackendBolt, BackendJSONL)
	}
	switch c.Chrome {
	case ChromeAuto, ChromeDark, ChromeLight:
	default:
		return fmt.Errorf("unknown chrome %q (want %s, %s or %s)", c.Chrome, ChromeAuto, ChromeDark, ChromeLight)
	}
	if c.ImportWorkers < 1 {
		return fmt.Errorf("import workers must be at least 1, got %d", c.ImportWorkers)
	}
	return nil
}

// StorePath returns the store file for the configured backend.
func (c Config) StorePath() string {
	if c.Backend == BackendJSONL {
		return filepath.Join(c.DataDir, "themes.jsonl")
	}
	return filepath.Join(c.DataDir, "themes.db")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}
