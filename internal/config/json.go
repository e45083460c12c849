package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/labelstation/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish absent keys from zero values.
type jsonConfig struct {
	CredentialFile *string `json:"credential_file"`
	LogFile        *string `json:"log_file"`
	LogLevel       *string `json:"log_level"`
	Verbose        *bool   `json:"verbose"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}

	if jc.CredentialFile != nil {
		cfg.CredentialFile = *jc.CredentialFile
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
	return nil
}
