package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"uniportal/domain/search"
	"uniportal/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newSavedSearch(name string) search.SavedSearch {
	now := time.Now().UTC()
	return search.SavedSearch{
		ID:        uuid.New(),
		Name:      name,
		Query:     "exam",
		Filters:   search.Filters{Course: lo.ToPtr("CS101")},
		CreatedAt: now,
		LastUsed:  now,
	}
}

func Test_Insert_Rejects_Duplicate_Name(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSavedSearchRepository(newKV(t), slog.Default())

	req.NoError(repository.Insert(ctx, newSavedSearch("CS101 exams")))
	err := repository.Insert(ctx, newSavedSearch("CS101 exams"))
	req.ErrorIs(err, errors.ErrDuplicateSearchName)
	req.ErrorIs(err, errors.ErrValidation)

	// Names are case-sensitive
	req.NoError(repository.Insert(ctx, newSavedSearch("cs101 exams")))

	saved, err := repository.List(ctx)
	req.NoError(err)
	req.Len(saved, 2)
	req.Equal("CS101 exams", saved[0].Name)
}

func Test_Delete_Frees_The_Name(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSavedSearchRepository(newKV(t), slog.Default())
	saved := newSavedSearch("weekly")
	req.NoError(repository.Insert(ctx, saved))

	req.NoError(repository.Delete(ctx, saved.ID))
	req.NoError(repository.Delete(ctx, saved.ID))

	_, err := repository.Get(ctx, saved.ID)
	req.ErrorIs(err, errors.ErrSavedSearchNotFound)
	req.NoError(repository.Insert(ctx, newSavedSearch("weekly")))
}

func Test_Update_Saved_Search(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSavedSearchRepository(newKV(t), slog.Default())
	saved := newSavedSearch("weekly")
	other := newSavedSearch("monthly")
	req.NoError(repository.Insert(ctx, saved))
	req.NoError(repository.Insert(ctx, other))

	updated, err := repository.Update(ctx, saved.ID, func(s search.SavedSearch) search.SavedSearch {
		s.ResultCount = 4
		return s
	})
	req.NoError(err)
	req.Equal(4, updated.ResultCount)
	req.Equal("CS101", *updated.Filters.Course)

	_, err = repository.Update(ctx, saved.ID, func(s search.SavedSearch) search.SavedSearch {
		s.Name = "monthly"
		return s
	})
	req.ErrorIs(err, errors.ErrDuplicateSearchName)

	_, err = repository.Update(ctx, uuid.New(), func(s search.SavedSearch) search.SavedSearch { return s })
	req.ErrorIs(err, errors.ErrSavedSearchNotFound)
}
