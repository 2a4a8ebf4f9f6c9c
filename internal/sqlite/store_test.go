// Tests for the saved-record store.
package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ldforge/pkg/types"
)

func newAttachedStore(t *testing.T, dir string) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Attach(types.Config{DataDir: dir}))
	t.Cleanup(func() { s.Detach() })
	return s
}

func record(schemaType, name, id string) *types.Record {
	rec := types.NewRecord()
	rec.Set(types.KeyContext, types.SchemaContext)
	rec.Set(types.KeyType, schemaType)
	if id != "" {
		rec.Set(types.KeyID, id)
	}
	rec.Set("name", name)
	return rec
}

func TestStore_Attach(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := NewStore()
	require.NoError(t, s.Attach(types.Config{DataDir: dir}))

	for _, name := range []string{recordsJSONL, databaseFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}

	assert.ErrorIs(t, s.Attach(types.Config{DataDir: dir}), types.ErrAlreadyAttached)
	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach())
}

func TestStore_AttachRequiresDataDir(t *testing.T) {
	assert.ErrorIs(t, NewStore().Attach(types.Config{}), types.ErrDataDirEmpty)
}

func TestStore_Detached(t *testing.T) {
	s := NewStore()
	_, err := s.Save(record("Person", "Ada", ""), "Person", nil)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.Get("x")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.List("")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, s.Delete("x"), types.ErrStoreDetached)
}

func TestStore_SaveGet(t *testing.T) {
	s := newAttachedStore(t, t.TempDir())

	rec := record("Person", "Ada <Lovelace>", "https://example.com/#ada")
	id, err := s.Save(rec, "Person", types.Issues{})
	require.NoError(t, err)
	assert.Len(t, id, 36)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.RecordID)
	assert.Equal(t, "Person", got.SchemaType)
	assert.Equal(t, "https://example.com/#ada", got.RecordKey)
	assert.Equal(t, rec.String(), got.Record.String())
	assert.Empty(t, got.Issues)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStore_ListAndDelete(t *testing.T) {
	s := newAttachedStore(t, t.TempDir())
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	idA, err := s.Save(record("Person", "A", ""), "Person", nil)
	require.NoError(t, err)
	_, err = s.Save(record("Event", "Launch", ""), "Event", types.Issues{"Missing required property: startDate"})
	require.NoError(t, err)
	idC, err := s.Save(record("Person", "C", ""), "Person", nil)
	require.NoError(t, err)

	all, err := s.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, idA, all[0].RecordID)
	assert.Equal(t, types.Issues{"Missing required property: startDate"}, all[1].Issues)

	people, err := s.List("Person")
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, idC, people[1].RecordID)

	require.NoError(t, s.Delete(idA))
	assert.ErrorIs(t, s.Delete(idA), types.ErrNotFound)

	people, err = s.List("Person")
	require.NoError(t, err)
	assert.Len(t, people, 1)

	none, err := s.List("Recipe")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_PersistsAcrossAttach(t *testing.T) {
	dir := t.TempDir()

	s := NewStore()
	require.NoError(t, s.Attach(types.Config{DataDir: dir}))
	id, err := s.Save(record("Person", "Ada", ""), "Person", nil)
	require.NoError(t, err)
	require.NoError(t, s.Detach())

	data, err := os.ReadFile(filepath.Join(dir, recordsJSONL))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], id)

	s2 := newAttachedStore(t, dir)
	got, err := s2.Get(id)
	require.NoError(t, err)
	name, _ := got.Record.Get("name")
	assert.Equal(t, "Ada", name)
}
