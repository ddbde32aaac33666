package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/mindclash/debate-arena/core"
)

const debateKeyPrefix = "debate/"

// Store is the persistence contract the engine consumes. Debates are
// saved and loaded as whole aggregates (rounds, judgment and votes
// included); every non-notfound failure wraps core.ErrStorage.
type Store interface {
	SaveDebate(d *core.Debate) error
	GetDebate(id string) (*core.Debate, error)
	ListDebates(status core.Status) ([]*core.Debate, error)
	CountDebates(status core.Status) (int, error)
	Close() error
	RunGC() error
}

// BadgerStore is a BadgerDB-backed Store.
type BadgerStore struct {
	db     *badger.DB
	config BadgerDBConfig
}

// Open creates a BadgerStore with the given configuration.
func Open(config BadgerDBConfig) (*BadgerStore, error) {
	var opts badger.Options
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(filepath.Join(config.DataDir, "badgerdb"))
	}
	if config.DisableLogging {
		opts.Logger = nil
	}
	opts.SyncWrites = config.SyncWrites

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	s := &BadgerStore{db: db, config: config}
	if config.GCInterval > 0 {
		go s.startGCRoutine(time.Duration(config.GCInterval) * time.Second)
	}
	return s, nil
}

func (s *BadgerStore) startGCRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := s.RunGC(); err != nil {
			log.Printf("BadgerDB GC failed: %v", err)
		}
	}
}

// SaveDebate upserts the whole debate aggregate atomically.
func (s *BadgerStore) SaveDebate(d *core.Debate) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: encoding debate %s: %v", core.ErrStorage, d.ID, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(debateKeyPrefix+d.ID), data)
	})
	if err != nil {
		return fmt.Errorf("%w: saving debate %s: %v", core.ErrStorage, d.ID, err)
	}
	return nil
}

// GetDebate loads a debate aggregate by ID.
func (s *BadgerStore) GetDebate(id string) (*core.Debate, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(debateKeyPrefix + id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("debate %s: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading debate %s: %v", core.ErrStorage, id, err)
	}

	var d core.Debate
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: decoding debate %s: %v", core.ErrStorage, id, err)
	}
	return &d, nil
}

// ListDebates returns debates newest-first, optionally filtered by status.
// An empty status matches everything.
func (s *BadgerStore) ListDebates(status core.Status) ([]*core.Debate, error) {
	var debates []*core.Debate

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(debateKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var d core.Debate
				if err := json.Unmarshal(val, &d); err != nil {
					return err
				}
				if status == "" || d.Status == status {
					debates = append(debates, &d)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: listing debates: %v", core.ErrStorage, err)
	}

	sort.Slice(debates, func(i, j int) bool {
		return debates[i].CreatedAt.After(debates[j].CreatedAt)
	})
	return debates, nil
}

// CountDebates counts debates, optionally filtered by status.
func (s *BadgerStore) CountDebates(status core.Status) (int, error) {
	debates, err := s.ListDebates(status)
	if err != nil {
		return 0, err
	}
	return len(debates), nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// RunGC triggers a value log garbage collection cycle.
func (s *BadgerStore) RunGC() error {
	if s.config.InMemory {
		return nil
	}
	err := s.db.RunValueLogGC(0.5)
	if err == badger.ErrNoRewrite {
		return nil
	}
	return err
}
