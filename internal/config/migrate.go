package config

import (
	"fmt"
	"os"

	"github.com/zbiljic/vconfig-go"
)

// loadOrCreate loads an existing config file, or returns the default
// configuration when no file is found.
func loadOrCreate() (*Config, error) {
	configPath, err := FindFile()
	if err != nil {
		if os.IsNotExist(err) {
			// no config file found, return default configuration
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("error searching for config file: %w", err)
	}

	version, err := vconfig.GetVersion(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// fallback create new config
			return NewDefault(), nil
		}
		return nil, err
	}

	switch version {
	case configVersionV1:
		config, err := vconfig.LoadConfig[configV1](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		return config, nil
	default:
		return nil, errUnknownVersion(version)
	}
}
