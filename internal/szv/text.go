package szv

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// TextDecoder turns deobfuscated line bytes into text.
type TextDecoder interface {
	Decode(b []byte) (string, error)
}

// TextEncoder is the inverse of TextDecoder, used to produce credential
// files.
type TextEncoder interface {
	Encode(s string) ([]byte, error)
}

// Windows1250 is the Central European code page used by the legacy encoder.
type Windows1250 struct{}

var (
	_ TextDecoder = Windows1250{}
	_ TextEncoder = Windows1250{}
)

// Decode converts windows-1250 bytes to a UTF-8 string. The code page
// leaves a few byte values undefined (0x81, 0x83, 0x88, 0x90, 0x98); any of
// them makes the whole line invalid.
func (Windows1250) Decode(b []byte) (string, error) {
	out, err := charmap.Windows1250.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	// A single-byte code page never yields U+FFFD for a defined byte.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("byte undefined in windows-1250 near offset %d", undefinedOffset(b))
	}
	return string(out), nil
}

func (Windows1250) Encode(s string) ([]byte, error) {
	out, err := charmap.Windows1250.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode windows-1250: %w", err)
	}
	return out, nil
}

func undefinedOffset(b []byte) int {
	for i, c := range b {
		if charmap.Windows1250.DecodeByte(c) == utf8.RuneError {
			return i
		}
	}
	return -1
}
