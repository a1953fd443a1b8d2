package repositories

import (
	"cmp"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"uniportal/infrastructure/storage"

	"github.com/samber/lo"
)

const (
	prefixDraft      = "draft:"
	prefixSent       = "sent:"
	prefixInbox      = "inbox:"
	prefixSearch     = "search:"
	prefixSearchName = "search-name:"
	prefixSeq        = "seq:"
)

// envelope is the stored form of every record. Seq keeps insertion order,
// since keys are ordered by id and ids are random.
type envelope[T any] struct {
	Seq    uint64 `json:"seq"`
	Record T      `json:"record"`
}

func key(prefix, id string) []byte {
	return []byte(prefix + id)
}

// nextSeq increments the counter of a collection inside the caller's transaction.
func nextSeq(txn storage.Txn, collection string) (uint64, error) {
	counterKey := key(prefixSeq, collection)
	var current uint64
	raw, err := txn.Get(counterKey)
	switch {
	case err == nil:
		if len(raw) != 8 {
			return 0, fmt.Errorf("corrupted counter %s", counterKey)
		}
		current = binary.BigEndian.Uint64(raw)
	case errors.Is(err, storage.ErrKeyNotFound):
	default:
		return 0, err
	}
	next := current + 1
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, next)
	if err := txn.Set(counterKey, buf); err != nil {
		return 0, err
	}
	return next, nil
}

func put[T any](txn storage.Txn, k []byte, seq uint64, record T) error {
	data, err := json.Marshal(envelope[T]{Seq: seq, Record: record})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", k, err)
	}
	return txn.Set(k, data)
}

func get[T any](txn storage.Txn, k []byte) (envelope[T], error) {
	var env envelope[T]
	data, err := txn.Get(k)
	if err != nil {
		return env, err
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return env, fmt.Errorf("unmarshal %s: %w", k, err)
	}
	return env, nil
}

func exists(txn storage.Txn, k []byte) (bool, error) {
	_, err := txn.Get(k)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// list returns the records under prefix in insertion order.
func list[T any](txn storage.Txn, prefix string) ([]T, error) {
	var envelopes []envelope[T]
	err := txn.Scan([]byte(prefix), func(k, value []byte) error {
		var env envelope[T]
		if err := json.Unmarshal(value, &env); err != nil {
			return fmt.Errorf("unmarshal %s: %w", k, err)
		}
		envelopes = append(envelopes, env)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(envelopes, func(a, b envelope[T]) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return lo.Map(envelopes, func(env envelope[T], _ int) T { return env.Record }), nil
}
