package plugin

import (
	"errors"

	"github.com/google/uuid"
)

// uidNamespace scopes class ids generated from plugin IDs.
var uidNamespace = uuid.MustParse("5b1d7a0e-3f2c-4c7e-9d38-2a6f0c4e8b17")

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx", "Instrument")

	WantsMidiInput     bool
	ProducesMidiOutput bool
	IsMidiEffect       bool
}

// UID returns the 16-byte class id for the plugin. It is a name-based
// (SHA-1) UUID of the ID, so it is stable across builds.
func (i Info) UID() [16]byte {
	return uuid.NewSHA1(uidNamespace, []byte(i.ID))
}

// UIDString formats the class id the way hosts print it.
func (i Info) UIDString() string {
	return uuid.UUID(i.UID()).String()
}

// ValidateUID checks that a class id can be derived from the info.
func (i Info) ValidateUID() error {
	if i.ID == "" {
		return errors.New("plugin ID must not be empty")
	}
	if i.UID() == uuid.Nil {
		return errors.New("plugin UID is nil")
	}
	return nil
}
