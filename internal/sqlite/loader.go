package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// loadJSONL reads records.jsonl into the records table in one transaction.
// Lines that do not decode as a saved record, or that repeat an ID, are
// skipped.
func loadJSONL(db *sql.DB, dataDir string) (int, error) {
	lines, err := readJSONL(filepath.Join(dataDir, recordsJSONL))
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL())
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for _, line := range lines {
		var saved types.SavedRecord
		if err := json.Unmarshal(line, &saved); err != nil || saved.RecordID == "" || saved.Record == nil {
			continue
		}
		args, err := rowArgs(&saved)
		if err != nil {
			continue
		}
		if _, err := stmt.Exec(args...); err != nil {
			continue
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}

func insertSQL() string {
	placeholders := make([]string, len(recordColumns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf(
		"INSERT INTO records (%s) VALUES (%s)",
		strings.Join(recordColumns, ", "),
		strings.Join(placeholders, ", "),
	)
}

// rowArgs dehydrates a saved record into column values in recordColumns
// order.
func rowArgs(saved *types.SavedRecord) ([]any, error) {
	body, err := saved.Record.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding record body: %w", err)
	}
	issues := saved.Issues
	if issues == nil {
		issues = types.Issues{}
	}
	issuesJSON, err := json.Marshal(issues)
	if err != nil {
		return nil, fmt.Errorf("encoding issues: %w", err)
	}
	var key any
	if saved.RecordKey != "" {
		key = saved.RecordKey
	}
	return []any{
		saved.RecordID,
		saved.SchemaType,
		key,
		string(body),
		string(issuesJSON),
		saved.CreatedAt.UTC().Format(timeLayout),
	}, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateRecord converts a records row into a SavedRecord.
func hydrateRecord(row scanner) (*types.SavedRecord, error) {
	var (
		saved     types.SavedRecord
		key       sql.NullString
		body      string
		issues    string
		createdAt string
	)
	if err := row.Scan(&saved.RecordID, &saved.SchemaType, &key, &body, &issues, &createdAt); err != nil {
		return nil, err
	}
	saved.RecordKey = key.String

	rec := types.NewRecord()
	if err := rec.UnmarshalJSON([]byte(body)); err != nil {
		return nil, fmt.Errorf("decoding record body: %w", err)
	}
	saved.Record = rec

	if err := json.Unmarshal([]byte(issues), &saved.Issues); err != nil {
		return nil, fmt.Errorf("decoding issues: %w", err)
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	saved.CreatedAt = t
	return &saved, nil
}
