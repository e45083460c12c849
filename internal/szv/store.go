package szv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/labelstation/internal/logging"
)

// Store verifies passwords against a credential file. The file is read
// again on every call, so edits take effect on the next login attempt.
type Store struct {
	path   string
	dec    TextDecoder
	logger logging.Logger
}

// NewStore returns a Store for the file at path. A nil dec means
// windows-1250.
func NewStore(path string, dec TextDecoder, logger logging.Logger) *Store {
	if dec == nil {
		dec = Windows1250{}
	}
	return &Store{path: path, dec: dec, logger: logger.With("file", path)}
}

// Path returns the credential file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the credential file and logs every skipped or overwritten line.
func (s *Store) Load(ctx context.Context) (*Index, error) {
	ix, err := LoadIndex(s.path, s.dec)
	if err != nil {
		s.logger.Error(ctx, "reading credential file failed", "error", err, "code", "SZVUT009")
		return nil, err
	}

	for _, le := range ix.Skipped {
		s.logger.Warn(ctx, "skipped undecodable credential line", "line", le.Line, "error", le.Err, "code", "SZVUT008")
	}
	for _, line := range ix.Overwritten {
		s.logger.Warn(ctx, "credential token repeated, later line wins", "line", line, "code", "SZVUT010")
	}
	s.logger.Debug(ctx, "credential index loaded", "entries", ix.Len(), "skipped", len(ix.Skipped))

	return ix, nil
}

// Login loads the index and checks password against it.
func (s *Store) Login(ctx context.Context, password string) (Identity, error) {
	ix, err := s.Load(ctx)
	if err != nil {
		return Identity{}, err
	}

	id, err := ix.CheckLogin(password)
	switch {
	case errors.Is(err, ErrNotFound):
		s.logger.Warn(ctx, "password not found in credential file", "code", "SZVUT006")
	case errors.Is(err, ErrMalformedRecord):
		s.logger.Warn(ctx, "matching credential has too few attributes", "error", err, "code", "SZVUT004")
	case err != nil:
		s.logger.Error(ctx, "unexpected error verifying password", "error", err, "code", "SZVUT007")
	default:
		s.logger.Info(ctx, "operator logged in", "surname", id.Surname, "given_name", id.GivenName, "prefix", id.Prefix)
	}

	return id, err
}

// Dump writes every decoded line of the credential file to w, one per line,
// fields separated by " | ". Undecodable lines are reported in place.
func (s *Store) Dump(ctx context.Context, w io.Writer) error {
	f, err := os.Open(s.path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFileAccess, err)
		s.logger.Error(ctx, "reading credential file failed", "error", err, "code", "SZVUT002")
		return err
	}
	defer f.Close()

	var werr error
	err = scanLines(f, s.dec, func(line int, fields []string, err error) {
		if werr != nil {
			return
		}
		if err != nil {
			_, werr = fmt.Fprintf(w, "%4d: skipped: %v\n", line, err)
			return
		}
		_, werr = fmt.Fprintf(w, "%4d: %s\n", line, strings.Join(fields, " | "))
	})
	if err != nil {
		s.logger.Error(ctx, "reading credential file failed", "error", err, "code", "SZVUT002")
		return err
	}
	return werr
}
