// Package sqlite provides the public API for the SQLite record library.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/mesh-intelligence/ldforge/internal/sqlite"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// NewLibrary creates a new record library backed by records.jsonl and a
// SQLite index. The library is not attached; call Attach with a Config.
//
// Example:
//
//	lib := sqlite.NewLibrary()
//	err := lib.Attach(types.Config{DataDir: ".ldforge-db"})
//	defer lib.Detach()
func NewLibrary() types.Library {
	return sqlite.NewStore()
}
