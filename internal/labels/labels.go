// Package labels prepares print records read from .lbl files for the label
// printing system.
//
// A label file carries, per serial number, a header line and a record line:
//
//	<serial>D="Col A","Col B","P Znacka balice"
//	<serial>E="a","b","x"
//
// Columns are separated by `","`.
package labels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/labelstation/internal/session"
	"github.com/samber/lo"
)

// MarkerColumn is the header name of the package marker column, which
// receives the operator's prefix.
const MarkerColumn = "P Znacka balice"

const columnSeparator = `","`

var (
	ErrNoSession             = errors.New("no operator logged in")
	ErrMarkerColumnMissing   = errors.New("package marker column missing from header")
	ErrMarkerIndexOutOfRange = errors.New("record has no package marker column")
	ErrHeaderOrRecordMissing = errors.New("header or record line not found")
)

// ExtractHeaderAndRecord finds the D= (header) and E= (record) lines for
// serial. The last matching line of each kind wins.
func ExtractHeaderAndRecord(lines []string, serial string) (header, record string, err error) {
	keyD, keyE := serial+"D=", serial+"E="

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, keyD):
			header = strings.TrimSpace(strings.TrimPrefix(line, keyD))
		case strings.HasPrefix(line, keyE):
			record = strings.TrimSpace(strings.TrimPrefix(line, keyE))
		}
	}

	if header == "" || record == "" {
		return "", "", fmt.Errorf("%w: serial %q", ErrHeaderOrRecordMissing, serial)
	}
	return header, record, nil
}

// InjectPackageMarker writes the prefix of s into the record column that
// the header names MarkerColumn and returns the rewritten record.
func InjectPackageMarker(header, record string, s *session.Session) (string, error) {
	if s == nil {
		return "", ErrNoSession
	}

	headerFields := strings.Split(header, columnSeparator)
	recordFields := strings.Split(record, columnSeparator)

	idx := lo.IndexOf(lo.Map(headerFields, func(f string, _ int) string {
		return strings.Trim(f, `"`)
	}), MarkerColumn)
	if idx < 0 {
		return "", ErrMarkerColumnMissing
	}
	if idx >= len(recordFields) {
		return "", fmt.Errorf("%w: column %d, record has %d", ErrMarkerIndexOutOfRange, idx, len(recordFields))
	}

	recordFields[idx] = keepQuotes(recordFields[idx], s.Prefix)
	return strings.Join(recordFields, columnSeparator), nil
}

// keepQuotes replaces old with value, keeping the outer quote that the
// first and last columns carry after splitting.
func keepQuotes(old, value string) string {
	if strings.HasPrefix(old, `"`) {
		value = `"` + value
	}
	if strings.HasSuffix(old, `"`) {
		value += `"`
	}
	return value
}
