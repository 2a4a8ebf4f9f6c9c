package types

// Library stores generated records for later retrieval. Callers attach to a
// data directory, work with records, and detach when done.
type Library interface {
	// Attach opens the library in config.DataDir, creating the directory if
	// it does not exist. Returns ErrAlreadyAttached if already attached.
	Attach(config Config) error

	// Detach releases resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrStoreDetached.
	Detach() error

	// Save stores rec with its validation issues and returns the new
	// record ID.
	Save(rec *Record, schemaType string, issues Issues) (string, error)

	// Get returns the saved record with the given ID, or ErrNotFound.
	Get(id string) (*SavedRecord, error)

	// List returns saved records oldest first. A non-empty schemaType
	// limits the result to that type.
	List(schemaType string) ([]*SavedRecord, error)

	// Delete removes the saved record with the given ID, or returns
	// ErrNotFound.
	Delete(id string) error
}
