package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/labelstation/internal/filex"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrConfigMissing means the credential file location was not configured.
	ErrConfigMissing = errors.New("credential file location not configured")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds runtime settings for the label station console.
type Config struct {
	CredentialFile string `validate:"required"`
	LogFile        string `validate:"required"`
	LogLevel       string `validate:"omitempty,oneof=debug info warn warning error"`
	Verbose        bool
}

// LoadDefaults populates c with defaults. There is no default credential
// file; it has to come from the JSON file or -f.
func (c *Config) LoadDefaults() {
	c.LogFile = "log/app.log"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the JSON file named in args
// and the flags in args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths() error {
	var err error
	if c.CredentialFile, err = filex.ResolvePath(c.CredentialFile); err != nil {
		return fmt.Errorf("%w: credential_file: %w", ErrInvalidConfig, err)
	}
	if c.LogFile, err = filex.ResolvePath(c.LogFile); err != nil {
		return fmt.Errorf("%w: log_file: %w", ErrInvalidConfig, err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, fe := range verrs {
		if fe.Field() == "CredentialFile" {
			return ErrConfigMissing
		}
	}
	fe := verrs[0]
	return fmt.Errorf("%w: field %s fails %q", ErrInvalidConfig, fe.Field(), fe.Tag())
}
