package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/meridiandb/meridian/ql"
)

// BadgerStore implements RecordStore on BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) a record store at path.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable BadgerDB logs for now

	// Catalog records are small and read-heavy.
	opts.MemTableSize = 16 << 20
	opts.BlockCacheSize = 32 << 20
	opts.ValueThreshold = 1 << 10

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

// Put writes one record, replacing any existing value under the key.
func (s *BadgerStore) Put(key string, value *ql.ValueMessage) error {
	record := EncodeRecord(value)
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), record); err != nil {
			return fmt.Errorf("failed to write record %q: %w", key, err)
		}
		return nil
	})
}

// Get reads one record. A missing key returns badger.ErrKeyNotFound.
func (s *BadgerStore) Get(key string) (*ql.ValueMessage, error) {
	var m *ql.ValueMessage
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := DecodeRecord(val)
			if err != nil {
				return fmt.Errorf("record %q: %w", key, err)
			}
			m = decoded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a record. Deleting an absent key is not an error.
func (s *BadgerStore) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(key)); err != nil && err != badger.ErrKeyNotFound {
			return fmt.Errorf("failed to delete record %q: %w", key, err)
		}
		return nil
	})
}

// List returns all records whose key starts with prefix, in key order.
func (s *BadgerStore) List(prefix string) ([]Record, error) {
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(val []byte) error {
				m, err := DecodeRecord(val)
				if err != nil {
					return fmt.Errorf("record %q: %w", key, err)
				}
				records = append(records, Record{Key: key, Value: *m})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
