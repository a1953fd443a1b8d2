package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const maxConflictRetries = 3

type BadgerKV struct {
	db  *badger.DB
	log *slog.Logger
}

// OpenBadger opens the database at path, or an in-memory one when path is empty.
func OpenBadger(path string, log *slog.Logger) (*BadgerKV, error) {
	options := badger.DefaultOptions(path).WithLogger(badgerLogger{log: log})
	if path == "" {
		options = options.WithInMemory(true)
	}
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return NewBadgerKV(db, log), nil
}

func NewBadgerKV(db *badger.DB, log *slog.Logger) *BadgerKV {
	return &BadgerKV{db: db, log: log}
}

// DB exposes the underlying handle for maintenance tasks such as value log GC.
func (b *BadgerKV) DB() *badger.DB {
	return b.db
}

func (b *BadgerKV) View(ctx context.Context, fn func(txn Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.View(func(txn *badger.Txn) error {
		return fn(badgerTxn{txn: txn})
	})
}

// Update retries on write conflicts, so fn must be safe to run again.
func (b *BadgerKV) Update(ctx context.Context, fn func(txn Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		err = b.db.Update(func(txn *badger.Txn) error {
			return fn(badgerTxn{txn: txn})
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		b.log.Debug("Badger transaction conflict, retrying", "attempt", attempt+1)
	}
	return err
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}

type badgerTxn struct {
	txn *badger.Txn
}

func (t badgerTxn) Get(key []byte) ([]byte, error) {
	item, err := t.txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (t badgerTxn) Set(key, value []byte) error {
	return t.txn.Set(key, value)
}

func (t badgerTxn) Delete(key []byte) error {
	return t.txn.Delete(key)
}

func (t badgerTxn) Scan(prefix []byte, fn func(key, value []byte) error) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = prefix
	it := t.txn.NewIterator(options)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		value, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := fn(item.KeyCopy(nil), value); err != nil {
			return err
		}
	}
	return nil
}

// badgerLogger routes badger's printf style logs to slog.
type badgerLogger struct {
	log *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...), "component", "badger")
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...), "component", "badger")
}
