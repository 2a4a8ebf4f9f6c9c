// Package sqlite implements the saved-record library: records.jsonl in the
// data directory is the source of truth and a SQLite database rebuilt on
// every attach serves queries.
package sqlite

// Schema DDL for the query index.
const (
	createRecords = `CREATE TABLE records (
    record_id TEXT PRIMARY KEY,
    schema_type TEXT NOT NULL,
    record_key TEXT,
    body TEXT NOT NULL,
    issues TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createRecordsTypeIndex = `CREATE INDEX idx_records_schema_type ON records(schema_type);`
)

// schemaDDL is executed once per attach on a fresh database.
var schemaDDL = []string{
	createRecords,
	createRecordsTypeIndex,
}

// recordColumns lists the columns of the records table in insert order.
var recordColumns = []string{"record_id", "schema_type", "record_key", "body", "issues", "created_at"}

// timeLayout stores timestamps with fixed-width fractions so that text
// order is time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// File names inside the data directory.
const (
	recordsJSONL = "records.jsonl"
	databaseFile = "ldforge.db"
)
