package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// Durable storage layout inside the data directory. The three JSON documents
// are the source of truth; the database file is a disposable query engine
// rebuilt from them on every Attach.
const (
	patientsFile  = "patients.json"
	incidentsFile = "incidents.json"
	sessionFile   = "current-session.json"
	dbFile        = "clinic.db"
)

// Compile-time interface check: Backend must implement Clinic.
var _ types.Clinic = (*Backend)(nil)

// Backend implements the Clinic interface using SQLite as the query engine
// and JSON documents as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	// users is the fixed credential set. Seeded on Attach, never persisted.
	users []types.User

	// session is the authenticated user, mirrored to current-session.json.
	session *types.User
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. It creates the
// data directory if needed, builds the SQLite schema, loads the JSON
// documents (seeding the fixed defaults on first run), and restores any
// persisted session. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	config.DataDir = dataDir

	// Rebuild the database from scratch; the JSON documents carry state.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.users = seedUsers()

	if err := b.loadCollections(); err != nil {
		db.Close()
		b.db = nil
		return fmt.Errorf("loading collections: %w", err)
	}

	b.attached = true
	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrClinicDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.session = nil
	return nil
}

// generateUUID generates a new UUID v7 for record IDs. UUID v7 is sortable
// by creation time and collision-resistant under rapid successive calls.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// dataPath resolves a storage key to its file path in the data directory.
func (b *Backend) dataPath(name string) string {
	return filepath.Join(b.config.DataDir, name)
}

// requireAttached returns ErrClinicDetached when the backend is not attached.
// Callers must hold b.mu.
func (b *Backend) requireAttached() error {
	if !b.attached {
		return types.ErrClinicDetached
	}
	return nil
}

// requireSession checks attachment and that a session is acting.
// Callers must hold b.mu.
func (b *Backend) requireSession(session *types.User) error {
	if err := b.requireAttached(); err != nil {
		return err
	}
	if session == nil {
		return types.ErrNoSession
	}
	return nil
}

// requireAdmin checks attachment and that the acting session holds the Admin
// role. Every mutation goes through here. Callers must hold b.mu.
func (b *Backend) requireAdmin(session *types.User) error {
	if err := b.requireSession(session); err != nil {
		return err
	}
	if !session.IsAdmin() {
		return types.ErrUnauthorized
	}
	return nil
}
