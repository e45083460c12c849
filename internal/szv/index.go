package szv

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one decoded credential line.
type Record struct {
	// Line is the 1-based line number in the source file.
	Line   int
	Fields []string
}

// Token returns field 0, the password equivalent.
func (r Record) Token() string {
	if len(r.Fields) == 0 {
		return ""
	}
	return r.Fields[0]
}

// Joined returns all fields joined with a comma.
func (r Record) Joined() string {
	return strings.Join(r.Fields, ",")
}

// Attributes returns the comma separated attribute list that follows the
// token, or nil when the line carries nothing but the token.
func (r Record) Attributes() []string {
	if len(r.Fields) < 2 {
		return nil
	}
	return strings.Split(strings.Join(r.Fields[1:], ","), ",")
}

// Index maps the SHA-256 digest of each token to its record.
type Index struct {
	entries map[string]Record

	// Skipped lists lines that could not be decoded.
	Skipped []*LineError

	// Overwritten lists line numbers whose token digest replaced an
	// earlier line. The later line wins.
	Overwritten []int
}

// Digest returns the lowercase hex SHA-256 of s.
func Digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Len returns the number of distinct digests.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Lookup returns the record stored under digest.
func (ix *Index) Lookup(digest string) (Record, bool) {
	r, ok := ix.entries[digest]
	return r, ok
}

func (ix *Index) put(r Record) {
	d := Digest(r.Token())
	if _, ok := ix.entries[d]; ok {
		ix.Overwritten = append(ix.Overwritten, r.Line)
	}
	ix.entries[d] = r
}

// LoadIndex builds an index from the credential file at path.
func LoadIndex(path string, dec TextDecoder) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	return ReadIndex(f, dec)
}

// ReadIndex builds an index from credential lines read from r. Lines that
// fail to decode are recorded in Index.Skipped and otherwise ignored.
func ReadIndex(r io.Reader, dec TextDecoder) (*Index, error) {
	ix := &Index{entries: make(map[string]Record)}

	err := scanLines(r, dec, func(line int, fields []string, err error) {
		if err != nil {
			ix.Skipped = append(ix.Skipped, &LineError{Line: line, Err: err})
			return
		}
		ix.put(Record{Line: line, Fields: fields})
	})
	if err != nil {
		return nil, err
	}

	return ix, nil
}

// scanLines decodes every non-blank line of r and hands the outcome to fn.
// Lines may be of any length. Only a read failure of r itself is returned.
func scanLines(r io.Reader, dec TextDecoder, fn func(line int, fields []string, err error)) error {
	br := bufio.NewReader(r)

	line := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: read: %w", ErrFileAccess, err)
		}
		if raw != "" {
			line++
			if text := strings.TrimSpace(raw); text != "" {
				fields, derr := DecodeHexLine(text, dec)
				fn(line, fields, derr)
			}
		}
		if err != nil {
			return nil
		}
	}
}
