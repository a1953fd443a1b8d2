//go:generate go run go.uber.org/mock/mockgen -source=saved_search.go -destination=../mocks/mock_saved_search_repository.go -package=mocks
package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"uniportal/domain/search"
	"uniportal/errors"
	"uniportal/infrastructure/storage"

	"github.com/google/uuid"
)

type ISavedSearchRepository interface {
	Insert(ctx context.Context, saved search.SavedSearch) error
	Update(ctx context.Context, id uuid.UUID, fn func(search.SavedSearch) search.SavedSearch) (search.SavedSearch, error)
	Get(ctx context.Context, id uuid.UUID) (search.SavedSearch, error)
	List(ctx context.Context) ([]search.SavedSearch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SavedSearchRepository stores saved searches under search:{uuid} and keeps
// a search-name:{name} index pointing back to the id. Names are compared
// byte for byte, so the check is case-sensitive.
type SavedSearchRepository struct {
	kv  storage.IKV
	log *slog.Logger
}

func NewSavedSearchRepository(kv storage.IKV, log *slog.Logger) SavedSearchRepository {
	return SavedSearchRepository{kv: kv, log: log}
}

// Insert fails with ErrDuplicateSearchName when the name is taken. The check
// and the write share one transaction.
func (s SavedSearchRepository) Insert(ctx context.Context, saved search.SavedSearch) error {
	err := s.kv.Update(ctx, func(txn storage.Txn) error {
		nameKey := key(prefixSearchName, saved.Name)
		taken, err := exists(txn, nameKey)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %q", errors.ErrDuplicateSearchName, saved.Name)
		}
		seq, err := nextSeq(txn, prefixSearch)
		if err != nil {
			return err
		}
		if err := txn.Set(nameKey, []byte(saved.ID.String())); err != nil {
			return err
		}
		return put(txn, key(prefixSearch, saved.ID.String()), seq, saved)
	})
	return errors.Persistence("insert saved search", err)
}

func (s SavedSearchRepository) Update(ctx context.Context, id uuid.UUID, fn func(search.SavedSearch) search.SavedSearch) (search.SavedSearch, error) {
	var updated search.SavedSearch
	err := s.kv.Update(ctx, func(txn storage.Txn) error {
		k := key(prefixSearch, id.String())
		env, err := get[search.SavedSearch](txn, k)
		if stderrors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrSavedSearchNotFound, id)
		}
		if err != nil {
			return err
		}
		updated = fn(env.Record)
		if updated.Name != env.Record.Name {
			if err := s.rename(txn, env.Record.Name, updated.Name, id); err != nil {
				return err
			}
		}
		return put(txn, k, env.Seq, updated)
	})
	if err != nil {
		return search.SavedSearch{}, errors.Persistence("update saved search", err)
	}
	return updated, nil
}

func (s SavedSearchRepository) rename(txn storage.Txn, from, to string, id uuid.UUID) error {
	taken, err := exists(txn, key(prefixSearchName, to))
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %q", errors.ErrDuplicateSearchName, to)
	}
	if err := txn.Delete(key(prefixSearchName, from)); err != nil {
		return err
	}
	return txn.Set(key(prefixSearchName, to), []byte(id.String()))
}

func (s SavedSearchRepository) Get(ctx context.Context, id uuid.UUID) (search.SavedSearch, error) {
	var saved search.SavedSearch
	err := s.kv.View(ctx, func(txn storage.Txn) error {
		env, err := get[search.SavedSearch](txn, key(prefixSearch, id.String()))
		if stderrors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrSavedSearchNotFound, id)
		}
		saved = env.Record
		return err
	})
	if err != nil {
		return search.SavedSearch{}, errors.Persistence("get saved search", err)
	}
	return saved, nil
}

func (s SavedSearchRepository) List(ctx context.Context) ([]search.SavedSearch, error) {
	var saved []search.SavedSearch
	err := s.kv.View(ctx, func(txn storage.Txn) (err error) {
		saved, err = list[search.SavedSearch](txn, prefixSearch)
		return err
	})
	return saved, errors.Persistence("list saved searches", err)
}

// Delete is idempotent. The name index entry goes away with the record.
func (s SavedSearchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.kv.Update(ctx, func(txn storage.Txn) error {
		k := key(prefixSearch, id.String())
		env, err := get[search.SavedSearch](txn, k)
		if stderrors.Is(err, storage.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := txn.Delete(key(prefixSearchName, env.Record.Name)); err != nil {
			return err
		}
		return txn.Delete(k)
	})
	return errors.Persistence("delete saved search", err)
}
