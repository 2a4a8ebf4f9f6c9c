package types

import "time"

// SavedRecord is a generated record kept in the record library.
type SavedRecord struct {
	RecordID   string    `json:"record_id"`
	SchemaType string    `json:"schema_type"`
	RecordKey  string    `json:"record_key,omitempty"` // the record's @id, if any
	Record     *Record   `json:"record"`
	Issues     Issues    `json:"issues"`
	CreatedAt  time.Time `json:"created_at"`
}
