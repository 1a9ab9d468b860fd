package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/rolodex/pkg/types"
)

func attachedStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewStore()
	require.NoError(t, s.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dir,
	}))
	t.Cleanup(func() { _ = s.Detach() })
	return s, dir
}

func TestStoreAttachCreatesDatabase(t *testing.T) {
	_, dir := attachedStore(t)

	_, err := os.Stat(filepath.Join(dir, types.DefaultSQLiteSnapshot))
	assert.NoError(t, err)
}

func TestStoreAttachTwice(t *testing.T) {
	s, _ := attachedStore(t)
	err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestStoreLoadEmptyDatabase(t *testing.T) {
	s, _ := attachedStore(t)

	book, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
}

func TestStoreRoundTrip(t *testing.T) {
	s, _ := attachedStore(t)

	book := types.NewBook()
	alice, err := types.NewRecord("alice")
	require.NoError(t, err)
	require.NoError(t, alice.AddPhone("1234567890"))
	require.NoError(t, alice.AddPhone("1234567890")) // duplicate survives
	require.NoError(t, alice.SetBirthday("29.02.2000"))
	book.AddRecord(alice)

	bob, err := types.NewRecord("bob")
	require.NoError(t, err)
	book.AddRecord(bob)

	require.NoError(t, s.Save(book))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	gotAlice, ok := loaded.Find("alice")
	require.True(t, ok)
	assert.Equal(t, alice.RecordID, gotAlice.RecordID)
	assert.Equal(t, []types.Phone{"1234567890", "1234567890"}, gotAlice.Phones)
	require.NotNil(t, gotAlice.Birthday)
	assert.Equal(t, "29.02.2000", gotAlice.Birthday.String())

	gotBob, ok := loaded.Find("bob")
	require.True(t, ok)
	assert.Nil(t, gotBob.Birthday)
	assert.Empty(t, gotBob.Phones)

	records := loaded.Records()
	assert.Equal(t, "alice", records[0].Name.String())
	assert.Equal(t, "bob", records[1].Name.String())
}

func TestStoreSaveReplacesSnapshot(t *testing.T) {
	s, _ := attachedStore(t)

	book := types.NewBook()
	alice, err := types.NewRecord("alice")
	require.NoError(t, err)
	require.NoError(t, alice.AddPhone("1234567890"))
	book.AddRecord(alice)
	require.NoError(t, s.Save(book))

	book.Delete("alice")
	carol, err := types.NewRecord("carol")
	require.NoError(t, err)
	book.AddRecord(carol)
	require.NoError(t, s.Save(book))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	_, ok := loaded.Find("alice")
	assert.False(t, ok)
	_, ok = loaded.Find("carol")
	assert.True(t, ok)
}

func TestStoreSurvivesReattach(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	s := NewStore()
	require.NoError(t, s.Attach(cfg))
	book := types.NewBook()
	r, err := types.NewRecord("alice")
	require.NoError(t, err)
	book.AddRecord(r)
	require.NoError(t, s.Save(book))
	require.NoError(t, s.Detach())

	s2 := NewStore()
	require.NoError(t, s2.Attach(cfg))
	defer s2.Detach()

	loaded, err := s2.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

func TestStoreDetached(t *testing.T) {
	s := NewStore()

	_, err := s.Load()
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	err = s.Save(types.NewBook())
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	assert.NoError(t, s.Detach())
	assert.NoError(t, s.Detach())
}
