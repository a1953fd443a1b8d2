//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"uniportal/contract"
	"uniportal/domain/search"
)

type IMessageService interface {
	Search(ctx context.Context, query string, filters search.Filters, sort search.Sort) ([]search.Result, error)
	SearchRaw(ctx context.Context, input string) ([]search.Result, error)
}

// MessageService runs searches against a fresh snapshot of the store, so a
// message sent a moment ago is already searchable.
type MessageService struct {
	corpus   contract.ICorpus
	searcher contract.ISearcher
	log      *slog.Logger
}

func NewMessageService(corpus contract.ICorpus, searcher contract.ISearcher, log *slog.Logger) *MessageService {
	return &MessageService{corpus: corpus, searcher: searcher, log: log}
}

func (s *MessageService) Search(ctx context.Context, query string, filters search.Filters, sort search.Sort) ([]search.Result, error) {
	corpus, err := s.corpus.Corpus(ctx)
	if err != nil {
		return nil, err
	}
	return s.searcher.Search(ctx, corpus, query, filters, sort)
}

// SearchRaw accepts a command line such as
// /find "final exam" --course CS101 --unread --sort date-newest
func (s *MessageService) SearchRaw(ctx context.Context, input string) ([]search.Result, error) {
	query, err := search.NewSearchQuery(input)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Search parsed", "terms", query.Terms, "sort", query.Sort)
	return s.Search(ctx, query.Terms, query.Filters, query.Sort)
}
