package szv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// FieldSeparator splits the fields of a decoded line.
const FieldSeparator = "\x15"

const (
	keystreamMod  = 32
	keystreamStep = 5
	keystreamMask = 0x6
)

// Keystream returns the key byte applied at position i of an n byte line.
func Keystream(n, i int) byte {
	k := (n%keystreamMod + keystreamStep*(i%keystreamMod)) % keystreamMod
	return byte(k) ^ keystreamMask
}

// xorStream applies the length-seeded keystream. It is its own inverse.
func xorStream(in []byte) []byte {
	out := make([]byte, len(in))
	k := len(in) % keystreamMod
	for i, b := range in {
		out[i] = b ^ (byte(k) ^ keystreamMask)
		k = (k + keystreamStep) % keystreamMod
	}
	return out
}

// DecodeLine deobfuscates one credential line and splits it into fields.
// A nil dec means windows-1250.
func DecodeLine(encrypted []byte, dec TextDecoder) ([]string, error) {
	if dec == nil {
		dec = Windows1250{}
	}
	text, err := dec.Decode(xorStream(encrypted))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLineDecode, err)
	}
	return strings.Split(text, FieldSeparator), nil
}

// DecodeHexLine hex decodes a file line and passes it to DecodeLine.
// Whitespace is allowed between byte pairs ("AB CD") but not inside one.
func DecodeHexLine(line string, dec TextDecoder) ([]string, error) {
	raw, err := hex.DecodeString(compactHex(line))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLineDecode, err)
	}
	return DecodeLine(raw, dec)
}

func compactHex(line string) string {
	groups := strings.Fields(line)
	for _, g := range groups {
		if len(g)%2 != 0 {
			return strings.TrimSpace(line)
		}
	}
	return strings.Join(groups, "")
}

// EncodeLine joins fields with FieldSeparator, converts them to the code
// page and obfuscates the result. A nil enc means windows-1250.
func EncodeLine(fields []string, enc TextEncoder) ([]byte, error) {
	if enc == nil {
		enc = Windows1250{}
	}
	plain, err := enc.Encode(strings.Join(fields, FieldSeparator))
	if err != nil {
		return nil, err
	}
	return xorStream(plain), nil
}

// EncodeHexLine is EncodeLine rendered the way the file stores it.
func EncodeHexLine(fields []string, enc TextEncoder) (string, error) {
	b, err := EncodeLine(fields, enc)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
