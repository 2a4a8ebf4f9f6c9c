package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

func TestAttach_LoadSkipsBadLines(t *testing.T) {
	dir := t.TempDir()
	lines := `{"record_id":"r1","schema_type":"Person","record":{"@context":"https://schema.org","@type":"Person","name":"Ada"},"issues":[],"created_at":"2026-01-02T03:04:05Z"}
{"record_id":"","schema_type":"Person","record":{"name":"no id"},"created_at":"2026-01-02T03:04:05Z"}
{"record_id":"r2","schema_type":"Event"}
garbage
{"record_id":"r1","schema_type":"Person","record":{"name":"duplicate"},"created_at":"2026-01-02T03:04:06Z"}
{"record_id":"r3","schema_type":"Event","record_key":"https://example.com/#e","record":{"@type":"Event","name":"Launch"},"issues":["Missing required property: startDate"],"created_at":"2026-01-02T03:04:07Z","future_field":true}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, recordsJSONL), []byte(lines), 0o644))

	s := newAttachedStore(t, dir)
	all, err := s.List("")
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "r1", all[0].RecordID)
	name, _ := all[0].Record.Get("name")
	assert.Equal(t, "Ada", name)

	assert.Equal(t, "r3", all[1].RecordID)
	assert.Equal(t, "https://example.com/#e", all[1].RecordKey)
	assert.Equal(t, types.Issues{"Missing required property: startDate"}, all[1].Issues)
}
