package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/labelstation/internal/flagx"
)

// parseFlags overlays cfg with -f, -l and -v from args. Other flags are
// ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("labelstation", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.CredentialFile, "f", cfg.CredentialFile, "credential file (SZV.dat)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose diagnostics")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-f", "-l", "-v"})); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
