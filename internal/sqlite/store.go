package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// Store keeps generated records between runs.
type Store struct {
	mu       sync.RWMutex
	attached bool
	dataDir  string
	db       *sql.DB

	// now is replaced in tests.
	now func() time.Time
}

// NewStore returns a detached store. Call Attach before use.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Attach creates the data directory and records.jsonl if needed, then
// rebuilds the SQLite index from records.jsonl. Returns ErrAlreadyAttached
// if the store is attached.
func (s *Store) Attach(cfg types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := cfg.ValidateStore(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := ensureJSONL(filepath.Join(cfg.DataDir, recordsJSONL)); err != nil {
		return err
	}

	// The index is disposable; records.jsonl is authoritative.
	dbPath := filepath.Join(cfg.DataDir, databaseFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("create index schema: %w", err)
		}
	}
	if _, err := loadJSONL(db, cfg.DataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	s.db = db
	s.dataDir = cfg.DataDir
	s.attached = true
	return nil
}

// Detach closes the index. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.attached = false
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Save stores rec with its schema type and validation issues and returns the
// new record ID (UUID v7).
func (s *Store) Save(rec *types.Record, schemaType string, issues types.Issues) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrStoreDetached
	}
	if rec == nil {
		return "", fmt.Errorf("save: nil record")
	}

	saved := &types.SavedRecord{
		RecordID:   generateUUID(),
		SchemaType: schemaType,
		Record:     rec,
		Issues:     issues,
		CreatedAt:  s.now().UTC(),
	}
	if id, ok := rec.Get(types.KeyID); ok {
		if key, isString := id.(string); isString {
			saved.RecordKey = key
		}
	}

	args, err := rowArgs(saved)
	if err != nil {
		return "", err
	}
	if _, err := s.db.Exec(insertSQL(), args...); err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}
	if err := s.persistLocked(); err != nil {
		return "", err
	}
	return saved.RecordID, nil
}

// Get returns the saved record with the given ID or ErrNotFound.
func (s *Store) Get(id string) (*types.SavedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	row := s.db.QueryRow(
		"SELECT record_id, schema_type, record_key, body, issues, created_at FROM records WHERE record_id = ?",
		id,
	)
	saved, err := hydrateRecord(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}
	return saved, nil
}

// List returns saved records oldest first. A non-empty schemaType limits
// the result to that type.
func (s *Store) List(schemaType string) ([]*types.SavedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.listLocked(schemaType)
}

func (s *Store) listLocked(schemaType string) ([]*types.SavedRecord, error) {
	query := "SELECT record_id, schema_type, record_key, body, issues, created_at FROM records"
	var args []any
	if schemaType != "" {
		query += " WHERE schema_type = ?"
		args = append(args, schemaType)
	}
	query += " ORDER BY created_at, record_id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	out := []*types.SavedRecord{}
	for rows.Next() {
		saved, err := hydrateRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}
	return out, rows.Err()
}

// Delete removes the saved record with the given ID or returns ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	res, err := s.db.Exec("DELETE FROM records WHERE record_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return s.persistLocked()
}

// persistLocked rewrites records.jsonl from the index. The caller holds the
// write lock.
func (s *Store) persistLocked() error {
	all, err := s.listLocked("")
	if err != nil {
		return err
	}
	lines := make([]json.RawMessage, 0, len(all))
	for _, saved := range all {
		b, err := json.Marshal(saved)
		if err != nil {
			return fmt.Errorf("encode record %s: %w", saved.RecordID, err)
		}
		lines = append(lines, b)
	}
	if err := writeJSONL(filepath.Join(s.dataDir, recordsJSONL), lines); err != nil {
		return fmt.Errorf("persist %s: %w", recordsJSONL, err)
	}
	return nil
}

// generateUUID returns a UUID v7, falling back to v4.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
