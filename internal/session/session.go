// Package session holds the identity of the operator currently logged in at
// the station. A Session is created from a successful login and handed
// explicitly to whatever builds print records; there is no package level
// "current user".
package session

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/labelstation/internal/szv"
	"github.com/google/uuid"
)

// Session is one successful login. Prefix is what goes into the package
// marker column of print records.
type Session struct {
	ID         uuid.UUID
	Surname    string
	GivenName  string
	Prefix     string
	LoggedInAt time.Time
}

// now is a test seam.
var now = time.Now

// New creates a Session for id.
func New(id szv.Identity) *Session {
	return &Session{
		ID:         uuid.New(),
		Surname:    id.Surname,
		GivenName:  id.GivenName,
		Prefix:     id.Prefix,
		LoggedInAt: now(),
	}
}

// DisplayName returns "Given Surname".
func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(s.GivenName + " " + s.Surname)
}
