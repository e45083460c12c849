package szv

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Attribute positions in the comma separated list after the token.
const (
	attrSurname   = 2
	attrGivenName = 3
	attrPrefix    = 4

	minAttributes = attrPrefix + 1
)

// Identity is what a successful login reveals about the operator.
type Identity struct {
	Surname   string
	GivenName string
	Prefix    string
}

// CheckLogin looks up the trimmed password. It returns ErrNotFound when no
// credential matches and ErrMalformedRecord when the matching credential
// does not carry all attributes. Both deny the login.
func (ix *Index) CheckLogin(password string) (Identity, error) {
	rec, ok := ix.Lookup(Digest(strings.TrimSpace(password)))
	if !ok {
		return Identity{}, ErrNotFound
	}

	attrs := lo.Map(rec.Attributes(), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	if len(attrs) < minAttributes {
		return Identity{}, fmt.Errorf("%w: line %d has %d of %d attributes",
			ErrMalformedRecord, rec.Line, len(attrs), minAttributes)
	}

	return Identity{
		Surname:   attrs[attrSurname],
		GivenName: attrs[attrGivenName],
		Prefix:    attrs[attrPrefix],
	}, nil
}
