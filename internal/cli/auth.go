package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/labelstation/internal/session"
	"github.com/dmitrijs2005/labelstation/internal/szv"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// Login prompts for the card password and verifies it.
//
// On success the previous operator, if any, is replaced. A wrong password
// or an unreadable credential file leaves the current session as it was.
func (a *App) Login(ctx context.Context) error {
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	id, err := a.store.Login(ctx, string(password))
	switch {
	case errors.Is(err, szv.ErrFileAccess):
		a.logger.Error(ctx, "credential file unavailable", "error", err, "code", "LOGCON003")
		fmt.Fprintf(a.out, "Credential file unavailable: %v\nTry again or contact the administrator.\n", err)
		return err
	case errors.Is(err, szv.ErrNotFound), errors.Is(err, szv.ErrMalformedRecord):
		a.logger.Warn(ctx, "login rejected", "code", "LOGCON002")
		fmt.Fprintln(a.out, "Incorrect password!")
		if a.config.Verbose {
			fmt.Fprintf(a.out, "  (%v)\n", err)
		}
		return err
	case err != nil:
		a.logger.Error(ctx, "login failed", "error", err, "code", "LOGCON003")
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	a.session = session.New(id)
	a.logger.Info(ctx, "session started", "session", a.session.ID.String(), "prefix", a.session.Prefix)
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", a.session.DisplayName(), a.session.Prefix)
	return nil
}

// Whoami prints the logged in operator.
func (a *App) Whoami(ctx context.Context) error {
	if a.session == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s, prefix %s, since %s\n",
		a.session.DisplayName(), a.session.Prefix, a.session.LoggedInAt.Format("2006-01-02 15:04:05"))
	return nil
}
