//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"uniportal/domain"
	"uniportal/domain/search"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// so that workers don't need to carry a name of their own.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IDraftStore is the part of the message store the lifecycle controller drives.
type IDraftStore interface {
	CreateDraft(ctx context.Context, payload domain.DraftPayload) (domain.DraftMessage, error)
	CreateAutoSavedDraft(ctx context.Context, payload domain.DraftPayload) (domain.DraftMessage, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, patch domain.DraftPatch, autoSaved bool) (domain.DraftMessage, error)
	GetDraft(ctx context.Context, id uuid.UUID) (domain.DraftMessage, error)
	DeleteDrafts(ctx context.Context, ids []uuid.UUID) error
	PromoteDraftToSent(ctx context.Context, id uuid.UUID) (domain.SentMessage, error)
}

// ICorpus gives a fresh snapshot of every searchable message.
type ICorpus interface {
	Corpus(ctx context.Context) ([]domain.Message, error)
}

type ISearcher interface {
	Search(ctx context.Context, corpus []domain.Message, query string, filters search.Filters, sort search.Sort) ([]search.Result, error)
}
