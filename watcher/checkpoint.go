package watcher

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.etcd.io/bbolt"
)

// CheckpointStore persists the next block to query, per governor.
type CheckpointStore interface {
	// Load returns the stored checkpoint; ok is false when none exists.
	Load(governor common.Address) (next uint64, ok bool, err error)
	Save(governor common.Address, next uint64) error
}

var checkpointBucket = []byte("checkpoints")

// BoltStore is a CheckpointStore backed by a bbolt database file.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens (or creates) the checkpoint database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("could not open checkpoint db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(checkpointBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load(governor common.Address) (uint64, bool, error) {
	var (
		next  uint64
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(checkpointBucket).Get(governor.Bytes())
		if data == nil {
			return nil
		}
		if len(data) != 8 {
			return fmt.Errorf("corrupt checkpoint for %s: %d bytes", governor, len(data))
		}
		next, found = binary.BigEndian.Uint64(data), true
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return next, found, nil
}

func (s *BoltStore) Save(governor common.Address, next uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], next)
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(checkpointBucket).Put(governor.Bytes(), buf[:])
	})
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// MemoryStore keeps checkpoints in memory.
type MemoryStore struct {
	mu    sync.Mutex
	check map[common.Address]uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{check: make(map[common.Address]uint64)}
}

func (s *MemoryStore) Load(governor common.Address) (uint64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := s.check[governor]
	return next, ok, nil
}

func (s *MemoryStore) Save(governor common.Address, next uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check[governor] = next
	return nil
}
