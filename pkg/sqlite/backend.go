// Package sqlite provides the public API for the SQLite clinic backend.
// It exposes the factory function for creating backends while keeping
// implementation details internal.
package sqlite

import (
	"github.com/BhanuNama/entnt-dental-dashboard/internal/sqlite"
	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".frontdesk-db",
//	})
//	defer store.Detach()
func NewBackend() types.Clinic {
	return sqlite.NewBackend()
}
