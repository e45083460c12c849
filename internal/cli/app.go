package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/labelstation/internal/config"
	"github.com/dmitrijs2005/labelstation/internal/logging"
	"github.com/dmitrijs2005/labelstation/internal/session"
	"github.com/dmitrijs2005/labelstation/internal/szv"
)

// CredentialStore is what the console needs from the credential file.
type CredentialStore interface {
	Login(ctx context.Context, password string) (szv.Identity, error)
	Dump(ctx context.Context, w io.Writer) error
}

type App struct {
	config  *config.Config
	store   CredentialStore
	logger  logging.Logger
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the console to the credential file named in c.
func NewApp(c *config.Config, logger logging.Logger) *App {
	return &App{
		config: c,
		store:  szv.NewStore(c.CredentialFile, nil, logger),
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Session returns the logged in operator, or nil.
func (a *App) Session() *session.Session {
	return a.session
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.DisplayName(), a.session.Prefix)
}

// Run logs the operator in and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Label station (type 'help' for commands)")
	a.logger.Info(ctx, "console started", "credential_file", a.config.CredentialFile)

	_ = a.Login(ctx)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	a.logger.Info(ctx, "console stopped")
}
