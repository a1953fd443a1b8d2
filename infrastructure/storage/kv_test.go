package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"uniportal/errors"

	"github.com/stretchr/testify/require"
)

func drivers(t *testing.T) map[string]IKV {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	badgerMemory, err := OpenBadger("", log)
	require.NoError(t, err)
	badgerDisk, err := OpenBadger(t.TempDir(), log)
	require.NoError(t, err)
	sqliteMemory, err := OpenSQLite(ctx, "", log)
	require.NoError(t, err)
	sqliteDisk, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "portal.db"), log)
	require.NoError(t, err)

	kvs := map[string]IKV{
		"badger in memory": badgerMemory,
		"badger on disk":   badgerDisk,
		"sqlite in memory": sqliteMemory,
		"sqlite on disk":   sqliteDisk,
	}
	t.Cleanup(func() {
		for _, kv := range kvs {
			_ = kv.Close()
		}
	})
	return kvs
}

func Test_Set_Get_Delete(t *testing.T) {
	for name, kv := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()

			err := kv.Update(ctx, func(txn Txn) error {
				return txn.Set([]byte("draft:1"), []byte("hello"))
			})
			req.NoError(err)

			var value []byte
			err = kv.View(ctx, func(txn Txn) error {
				value, err = txn.Get([]byte("draft:1"))
				return err
			})
			req.NoError(err)
			req.Equal("hello", string(value))

			err = kv.Update(ctx, func(txn Txn) error {
				return txn.Delete([]byte("draft:1"))
			})
			req.NoError(err)

			err = kv.View(ctx, func(txn Txn) error {
				_, err := txn.Get([]byte("draft:1"))
				return err
			})
			req.ErrorIs(err, ErrKeyNotFound)
		})
	}
}

func Test_Scan_Is_Ordered_And_Bounded_By_Prefix(t *testing.T) {
	for name, kv := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()

			// Given keys under two prefixes written out of order
			err := kv.Update(ctx, func(txn Txn) error {
				for _, key := range []string{"sent:b", "draft:c", "draft:a", "drafts", "draft:b"} {
					if err := txn.Set([]byte(key), []byte(key)); err != nil {
						return err
					}
				}
				return nil
			})
			req.NoError(err)

			// When scanning the draft prefix
			var keys []string
			err = kv.View(ctx, func(txn Txn) error {
				return txn.Scan([]byte("draft:"), func(key, value []byte) error {
					req.Equal(key, value)
					keys = append(keys, string(key))
					return nil
				})
			})

			// Then only draft keys come back in ascending order
			req.NoError(err)
			req.Equal([]string{"draft:a", "draft:b", "draft:c"}, keys)
		})
	}
}

func Test_Update_Is_All_Or_Nothing(t *testing.T) {
	for name, kv := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()
			boom := fmt.Errorf("boom")

			err := kv.Update(ctx, func(txn Txn) error {
				if err := txn.Set([]byte("draft:x"), []byte("x")); err != nil {
					return err
				}
				return boom
			})
			req.ErrorIs(err, boom)

			err = kv.View(ctx, func(txn Txn) error {
				_, err := txn.Get([]byte("draft:x"))
				return err
			})
			req.ErrorIs(err, ErrKeyNotFound)
		})
	}
}

func Test_Open_Rejects_Unknown_Driver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "postgres"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.ErrorIs(t, err, errors.ErrUnknownDriver)
}

func Test_Prefix_End(t *testing.T) {
	req := require.New(t)
	req.Equal([]byte("draft;"), prefixEnd([]byte("draft:")))
	req.Equal([]byte{0x01}, prefixEnd([]byte{0x00, 0xff}))
	req.Nil(prefixEnd([]byte{0xff, 0xff}))
}
