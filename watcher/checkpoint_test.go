package watcher

import (
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoints.db")
	other := common.HexToAddress("0x00000000000000000000000000000000000000bb")

	store, err := OpenBoltStore(path)
	require.NoError(t, err)

	_, ok, err := store.Load(testGovernor)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(testGovernor, 42))
	require.NoError(t, store.Save(testGovernor, 43))
	require.NoError(t, store.Save(other, 7))
	require.NoError(t, store.Close())

	store, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	next, ok, err := store.Load(testGovernor)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(43), next)

	next, ok, err = store.Load(other)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), next)
}

func TestBoltStoreCorrupt(t *testing.T) {
	store, err := OpenBoltStore(filepath.Join(t.TempDir(), "checkpoints.db"))
	require.NoError(t, err)
	defer store.Close()

	err = store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(checkpointBucket).Put(testGovernor.Bytes(), []byte{1, 2, 3})
	})
	require.NoError(t, err)

	_, _, err = store.Load(testGovernor)
	assert.ErrorContains(t, err, "corrupt checkpoint")
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok, err := store.Load(testGovernor)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(testGovernor, 9))
	next, ok, err := store.Load(testGovernor)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(9), next)
}
