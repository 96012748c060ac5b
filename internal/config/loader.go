package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/samber/lo"

	"github.com/zbiljic/vconfig-go"
)

// Environment variables recognized as overrides of the config file.
const (
	EnvModel         = "AICOMMIT_MODEL"
	EnvMaxDiffLength = "AICOMMIT_MAX_DIFF_LENGTH"
	EnvTemperature   = "AICOMMIT_TEMPERATURE"
)

var (
	// Cached configuration to avoid loading multiple times
	cachedConfig *Config
	// Mutex for thread-safe access to config file
	configMutex = &sync.Mutex{}
)

// Load loads configuration from the config file (if any) and applies
// environment overrides. The result is validated, cached, and reused for
// the remainder of the process.
func Load() (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	config, err := loadOrCreate()
	if err != nil {
		return nil, err
	}

	fillDefaults(config)

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cachedConfig = config
	return config, nil
}

// fillDefaults backfills settings a config file may omit.
func fillDefaults(config *Config) {
	defaults := NewDefault()

	if config.Model == "" {
		config.Model = defaults.Model
	}
	if config.MaxDiffLength == 0 {
		config.MaxDiffLength = defaults.MaxDiffLength
	}
	if config.Temperature == 0 {
		config.Temperature = defaults.Temperature
	}
}

// applyEnvOverrides lets process environment variables win over the file.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv(EnvModel); v != "" {
		config.Model = v
	}

	if v := os.Getenv(EnvMaxDiffLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errInvalidSetting(EnvMaxDiffLength, v, err)
		}
		config.MaxDiffLength = n
	}

	if v := os.Getenv(EnvTemperature); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errInvalidSetting(EnvTemperature, v, err)
		}
		config.Temperature = f
	}

	return nil
}

// Save saves configuration to a file.
func Save(config *Config, filename string) error {
	if config == nil || filename == "" {
		return errInvalidArgument
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	// ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errFailedToCreateDirectory(dir, err)
	}

	if err := vconfig.SaveConfig(config, filename); err != nil {
		return errFailedToSaveConfig(filename, err)
	}

	// update the cached config so subsequent loads see saved state
	cachedConfig = config

	return nil
}

// FindFile searches for configuration file in hierarchical order.
func FindFile() (string, error) {
	searchPaths := GetSearchPaths()

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// GetSearchPaths returns the list of paths to search for configuration files.
func GetSearchPaths() []string {
	var paths []string

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	// 1. ./.aicommit.json (current directory)
	paths = append(paths, filepath.Join(cwd, ".aicommit.json"))

	// 2. ./aicommit.json (current directory)
	paths = append(paths, filepath.Join(cwd, "aicommit.json"))

	// 3. Walk up directories looking for aicommit.json
	dir := cwd
	homeDir := lo.Must(os.UserHomeDir())
	for {
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			break // reached root or home directory
		}
		dir = parent
		paths = append(paths, filepath.Join(dir, "aicommit.json"))
	}

	// 4. ~/.config/aicommit/aicommit.json (user config)
	configDir := filepath.Join(homeDir, ".config", "aicommit")
	paths = append(paths, filepath.Join(configDir, "aicommit.json"))

	// 5. ~/.aicommit.json (user home fallback)
	paths = append(paths, filepath.Join(homeDir, ".aicommit.json"))

	return paths
}

// GetDefaultPath returns the default path for user configuration.
func GetDefaultPath() string {
	homeDir := lo.Must(os.UserHomeDir())

	// Prefer ~/.config/aicommit/aicommit.json
	configDir := filepath.Join(homeDir, ".config", "aicommit")
	return filepath.Join(configDir, "aicommit.json")
}

// ResetCache clears the cached configuration (useful for testing).
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()

	cachedConfig = nil
}
