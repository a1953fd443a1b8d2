package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"
)

type SQLiteKV struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLite opens the database file at path, or an in-memory one when path
// is empty, and creates the key-value table.
func OpenSQLite(ctx context.Context, path string, log *slog.Logger) (*SQLiteKV, error) {
	trimmed := strings.TrimSpace(path)
	inMemory := trimmed == "" || trimmed == ":memory:" || strings.Contains(trimmed, "mode=memory")
	if trimmed == "" {
		trimmed = ":memory:"
	}
	db, err := sql.Open("sqlite", trimmed)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if !inMemory {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
            key BLOB PRIMARY KEY,
            value BLOB NOT NULL
        );`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteKV{db: db, log: log}, nil
}

func (s *SQLiteKV) View(ctx context.Context, fn func(txn Txn) error) error {
	return s.run(ctx, true, fn)
}

func (s *SQLiteKV) Update(ctx context.Context, fn func(txn Txn) error) error {
	return s.run(ctx, false, fn)
}

func (s *SQLiteKV) run(ctx context.Context, readOnly bool, fn func(txn Txn) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(sqliteTxn{ctx: ctx, tx: tx, readOnly: readOnly}); err != nil {
		return err
	}
	if readOnly {
		return nil
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

type sqliteTxn struct {
	ctx      context.Context
	tx       *sql.Tx
	readOnly bool
}

func (t sqliteTxn) Get(key []byte) ([]byte, error) {
	var value []byte
	err := t.tx.QueryRowContext(t.ctx, `SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (t sqliteTxn) Set(key, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	_, err := t.tx.ExecContext(t.ctx, `INSERT INTO kv (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	return err
}

func (t sqliteTxn) Delete(key []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	_, err := t.tx.ExecContext(t.ctx, `DELETE FROM kv WHERE key = ?;`, key)
	return err
}

// Scan reads the whole range before calling fn so that fn may issue its own
// statements on the same connection.
func (t sqliteTxn) Scan(prefix []byte, fn func(key, value []byte) error) error {
	var (
		rows *sql.Rows
		err  error
	)
	if end := prefixEnd(prefix); end != nil {
		rows, err = t.tx.QueryContext(t.ctx, `SELECT key, value FROM kv WHERE key >= ? AND key < ? ORDER BY key;`, prefix, end)
	} else {
		rows, err = t.tx.QueryContext(t.ctx, `SELECT key, value FROM kv WHERE key >= ? ORDER BY key;`, prefix)
	}
	if err != nil {
		return err
	}

	type pair struct{ key, value []byte }
	var pairs []pair
	for rows.Next() {
		var p pair
		if err := rows.Scan(&p.key, &p.value); err != nil {
			_ = rows.Close()
			return err
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	if err := rows.Close(); err != nil {
		return err
	}

	for _, p := range pairs {
		if err := fn(p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}
