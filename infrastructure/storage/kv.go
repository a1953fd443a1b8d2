//go:generate go run go.uber.org/mock/mockgen -source=kv.go -destination=../../mocks/mock_kv.go -package=mocks
package storage

import (
	"context"
	"fmt"
)

var (
	ErrKeyNotFound = fmt.Errorf("key not found")
	ErrReadOnly    = fmt.Errorf("write in a read-only transaction")
)

// Txn is a single transaction on the key-value store.
// Values returned by Get and Scan are copies and stay valid after the
// transaction ends.
type Txn interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	// Scan visits every key starting with prefix in ascending byte order.
	Scan(prefix []byte, fn func(key, value []byte) error) error
}

// IKV is the persistence boundary. Update runs fn atomically: either every
// write of fn is committed or none is.
type IKV interface {
	View(ctx context.Context, fn func(txn Txn) error) error
	Update(ctx context.Context, fn func(txn Txn) error) error
	Close() error
}

// prefixEnd returns the smallest key greater than every key sharing prefix,
// or nil when no such key exists.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
