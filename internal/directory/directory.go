// Package directory holds the permission directory: identity records that
// bind a caller name to an ordered permission level, and the stores that
// answer point lookups over them.
package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Level is an ordered capability tier. Higher levels include everything
// the lower ones allow.
type Level int

const (
	NoAccess Level = iota
	ReadOnly
	FullAccess
)

func (l Level) String() string {
	switch l {
	case NoAccess:
		return "no_access"
	case ReadOnly:
		return "read_only"
	case FullAccess:
		return "full_access"
	default:
		return "unknown"
	}
}

// LevelFromLegacyBool maps the flat has-access flag still used by older
// deployments onto the ordered scale. A legacy "true" user could write,
// so it maps to FullAccess, not ReadOnly.
func LevelFromLegacyBool(hasAccess bool) Level {
	if hasAccess {
		return FullAccess
	}
	return NoAccess
}

// Identity is a directory record. Name is used only for lookup and is
// expected to be unique within the directory; ID is the durable key.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Level Level     `json:"permissionLevel"`
}

var ErrNotFound = errors.New("identity not found")

// Lookup is the read half of the directory. Lookups by name match
// case-insensitively. The List result may carry partial records (no
// permission level); GetByID always returns the full record.
type Lookup interface {
	// List returns identities matching name, or all identities when name
	// is empty. At most one match is expected for a concrete name.
	List(ctx context.Context, name string) ([]Identity, error)
	GetByID(ctx context.Context, id uuid.UUID) (Identity, error)
}

// Store is the full directory contract. Implementations must be safe for
// concurrent use.
type Store interface {
	Lookup
	Add(ctx context.Context, ident Identity) error
	Update(ctx context.Context, ident Identity) error
	Delete(ctx context.Context, id uuid.UUID) error
}
