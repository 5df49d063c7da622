package savedjobs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "saved.db"))
	require.NoError(t, err)
	return s
}

func TestAddListRemove(t *testing.T) {
	s := newStore(t)
	owner := OwnerKey(42)

	require.NoError(t, s.Add(owner, 100))
	require.NoError(t, s.Add(owner, 200))

	ids, err := s.List(owner)
	require.NoError(t, err)
	assert.Equal(t, []int64{200, 100}, ids)

	require.NoError(t, s.Remove(owner, 100))
	ids, err = s.List(owner)
	require.NoError(t, err)
	assert.Equal(t, []int64{200}, ids)
}

func TestAdd_Idempotent(t *testing.T) {
	s := newStore(t)
	owner := OwnerKey(42)

	require.NoError(t, s.Add(owner, 100))
	require.NoError(t, s.Add(owner, 100))

	ids, err := s.List(owner)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestRemove_MissingIsNoop(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Remove(OwnerKey(42), 999))
}

func TestToggle(t *testing.T) {
	s := newStore(t)
	owner := OwnerKey(42)

	saved, err := s.Toggle(owner, 100)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = s.Toggle(owner, 100)
	require.NoError(t, err)
	assert.False(t, saved)

	isSaved, err := s.IsSaved(owner, 100)
	require.NoError(t, err)
	assert.False(t, isSaved)
}

func TestOwnersAreNamespaced(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Add(OwnerKey(1), 100))
	require.NoError(t, s.Add(OwnerKey(2), 200))
	require.NoError(t, s.Add(GuestKey, 300))

	ids, err := s.List(OwnerKey(1))
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, ids)

	ids, err = s.List(GuestKey)
	require.NoError(t, err)
	assert.Equal(t, []int64{300}, ids)
}

func TestOwnerKey(t *testing.T) {
	assert.Equal(t, GuestKey, OwnerKey(0))
	assert.Equal(t, "user:7", OwnerKey(7))
}
