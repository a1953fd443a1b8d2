//go:generate go run go.uber.org/mock/mockgen -source=saved_search_service.go -destination=../mocks/mock_saved_search_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"uniportal/contract"
	"uniportal/domain/search"
	"uniportal/errors"
	"uniportal/repositories"

	"github.com/google/uuid"
)

type ISavedSearchService interface {
	Save(ctx context.Context, name, query string, filters search.Filters, resultCount int) (search.SavedSearch, error)
	Run(ctx context.Context, id uuid.UUID) ([]search.Result, search.SavedSearch, error)
	Get(ctx context.Context, id uuid.UUID) (search.SavedSearch, error)
	List(ctx context.Context) ([]search.SavedSearch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SavedSearchService keeps named search recipes. A recipe stores criteria
// only and is evaluated against the live corpus on every run.
type SavedSearchService struct {
	repository repositories.ISavedSearchRepository
	corpus     contract.ICorpus
	searcher   contract.ISearcher
	log        *slog.Logger
	now        func() time.Time
}

func NewSavedSearchService(repository repositories.ISavedSearchRepository, corpus contract.ICorpus, searcher contract.ISearcher, log *slog.Logger) *SavedSearchService {
	return &SavedSearchService{
		repository: repository,
		corpus:     corpus,
		searcher:   searcher,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Save registers a recipe under a unique, case-sensitive name.
func (s *SavedSearchService) Save(ctx context.Context, name, query string, filters search.Filters, resultCount int) (search.SavedSearch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return search.SavedSearch{}, errors.ErrEmptySearchName
	}
	if resultCount < 0 {
		return search.SavedSearch{}, fmt.Errorf("%w: negative result count", errors.ErrValidation)
	}
	now := s.now()
	saved := search.SavedSearch{
		ID:          uuid.New(),
		Name:        name,
		Query:       strings.TrimSpace(query),
		Filters:     filters.Normalize(),
		CreatedAt:   now,
		LastUsed:    now,
		ResultCount: resultCount,
	}
	if saved.Query == "" && saved.Filters.IsEmpty() {
		s.log.Warn("Saved search without query nor filter matches the whole corpus", "name", name)
	}
	if err := s.repository.Insert(ctx, saved); err != nil {
		return search.SavedSearch{}, err
	}
	s.log.Info("Search saved", "id", saved.ID, "name", name)
	return saved, nil
}

// Run evaluates the recipe again and records when it ran and what it found.
// Query and filters are left untouched.
func (s *SavedSearchService) Run(ctx context.Context, id uuid.UUID) ([]search.Result, search.SavedSearch, error) {
	saved, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, search.SavedSearch{}, err
	}
	corpus, err := s.corpus.Corpus(ctx)
	if err != nil {
		return nil, search.SavedSearch{}, err
	}
	results, err := s.searcher.Search(ctx, corpus, saved.Query, saved.Filters, search.SortRelevance)
	if err != nil {
		return nil, search.SavedSearch{}, err
	}
	now := s.now()
	updated, err := s.repository.Update(ctx, id, func(current search.SavedSearch) search.SavedSearch {
		current.LastUsed = now
		current.ResultCount = len(results)
		return current
	})
	if err != nil {
		return nil, search.SavedSearch{}, err
	}
	s.log.Info("Saved search run", "id", id, "name", updated.Name, "results", len(results))
	return results, updated, nil
}

func (s *SavedSearchService) Get(ctx context.Context, id uuid.UUID) (search.SavedSearch, error) {
	return s.repository.Get(ctx, id)
}

func (s *SavedSearchService) List(ctx context.Context) ([]search.SavedSearch, error) {
	return s.repository.List(ctx)
}

// Delete is idempotent.
func (s *SavedSearchService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("Saved search deleted", "id", id)
	return nil
}
