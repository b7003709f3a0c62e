package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore is a persistent TTL cache backed by BadgerDB. Entry TTLs use
// Badger's native expiry, and prefix deletes use its key iterator, so the
// store supports pattern-based invalidation.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a Badger-backed cache at dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger cache: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Get returns the stored value for key. Badger drops expired entries
// itself, so a found entry is always live.
func (b *BadgerStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger get: %w", err)
	}
	return value, true, nil
}

// Set stores value under key with Badger's native entry TTL.
func (b *BadgerStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("badger set: %w", err)
	}
	return nil
}

// DeleteByPrefix removes all entries whose key starts with prefix.
func (b *BadgerStore) DeleteByPrefix(_ context.Context, prefix string) error {
	keys := make([][]byte, 0, 64)

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("badger prefix scan: %w", err)
	}

	wb := b.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			return fmt.Errorf("badger prefix delete: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("badger prefix delete flush: %w", err)
	}
	return nil
}

// FlushAll drops every entry in the store.
func (b *BadgerStore) FlushAll(_ context.Context) error {
	if err := b.db.DropAll(); err != nil {
		return fmt.Errorf("badger flush: %w", err)
	}
	return nil
}

// SupportsPatternDelete reports true: Badger iterates by key prefix.
func (b *BadgerStore) SupportsPatternDelete() bool {
	return true
}

// Close closes the underlying database.
func (b *BadgerStore) Close() error {
	return b.db.Close()
}
