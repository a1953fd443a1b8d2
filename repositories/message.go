//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"uniportal/domain"
	"uniportal/errors"
	"uniportal/infrastructure/storage"

	"github.com/google/uuid"
)

type IMessageRepository interface {
	InsertDraft(ctx context.Context, draft domain.DraftMessage) error
	UpdateDraft(ctx context.Context, id uuid.UUID, fn func(domain.DraftMessage) (domain.DraftMessage, error)) (domain.DraftMessage, error)
	GetDraft(ctx context.Context, id uuid.UUID) (domain.DraftMessage, error)
	DeleteDrafts(ctx context.Context, ids []uuid.UUID) (int, error)
	PromoteDraft(ctx context.Context, id uuid.UUID, fn func(domain.DraftMessage) domain.SentMessage) (domain.SentMessage, error)
	ListDrafts(ctx context.Context) ([]domain.DraftMessage, error)
	PutDrafts(ctx context.Context, drafts []domain.DraftMessage) error
	ListSent(ctx context.Context) ([]domain.SentMessage, error)
	InsertReceived(ctx context.Context, message domain.ReceivedMessage) error
	UpdateReceived(ctx context.Context, id uuid.UUID, fn func(domain.ReceivedMessage) domain.ReceivedMessage) (domain.ReceivedMessage, error)
	ListReceived(ctx context.Context) ([]domain.ReceivedMessage, error)
}

// MessageRepository keeps drafts, sent and received messages as JSON records.
// Key layout:
//
//	draft:{uuid}  -> envelope[DraftMessage]
//	sent:{uuid}   -> envelope[SentMessage]
//	inbox:{uuid}  -> envelope[ReceivedMessage]
//	seq:{prefix}  -> big endian counter
type MessageRepository struct {
	kv  storage.IKV
	log *slog.Logger
}

func NewMessageRepository(kv storage.IKV, log *slog.Logger) MessageRepository {
	return MessageRepository{kv: kv, log: log}
}

func (m MessageRepository) InsertDraft(ctx context.Context, draft domain.DraftMessage) error {
	err := m.kv.Update(ctx, func(txn storage.Txn) error {
		seq, err := nextSeq(txn, prefixDraft)
		if err != nil {
			return err
		}
		return put(txn, key(prefixDraft, draft.ID.String()), seq, draft)
	})
	return errors.Persistence("insert draft", err)
}

// UpdateDraft is an atomic read-modify-write of a single draft.
func (m MessageRepository) UpdateDraft(ctx context.Context, id uuid.UUID, fn func(domain.DraftMessage) (domain.DraftMessage, error)) (domain.DraftMessage, error) {
	var updated domain.DraftMessage
	err := m.kv.Update(ctx, func(txn storage.Txn) error {
		k := key(prefixDraft, id.String())
		env, err := get[domain.DraftMessage](txn, k)
		if stderrors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrDraftNotFound, id)
		}
		if err != nil {
			return err
		}
		updated, err = fn(env.Record)
		if err != nil {
			return err
		}
		return put(txn, k, env.Seq, updated)
	})
	if err != nil {
		return domain.DraftMessage{}, errors.Persistence("update draft", err)
	}
	return updated, nil
}

func (m MessageRepository) GetDraft(ctx context.Context, id uuid.UUID) (domain.DraftMessage, error) {
	var draft domain.DraftMessage
	err := m.kv.View(ctx, func(txn storage.Txn) error {
		env, err := get[domain.DraftMessage](txn, key(prefixDraft, id.String()))
		if stderrors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrDraftNotFound, id)
		}
		draft = env.Record
		return err
	})
	if err != nil {
		return domain.DraftMessage{}, errors.Persistence("get draft", err)
	}
	return draft, nil
}

// DeleteDrafts ignores unknown ids and returns how many drafts were removed.
func (m MessageRepository) DeleteDrafts(ctx context.Context, ids []uuid.UUID) (int, error) {
	var removed int
	err := m.kv.Update(ctx, func(txn storage.Txn) error {
		removed = 0
		for _, id := range ids {
			k := key(prefixDraft, id.String())
			found, err := exists(txn, k)
			if err != nil {
				return err
			}
			if !found {
				continue
			}
			if err := txn.Delete(k); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return 0, errors.Persistence("delete drafts", err)
	}
	return removed, nil
}

// PromoteDraft removes the draft and stores its sent copy in one transaction,
// so the id never exists in both collections.
func (m MessageRepository) PromoteDraft(ctx context.Context, id uuid.UUID, fn func(domain.DraftMessage) domain.SentMessage) (domain.SentMessage, error) {
	var sent domain.SentMessage
	err := m.kv.Update(ctx, func(txn storage.Txn) error {
		draftKey := key(prefixDraft, id.String())
		env, err := get[domain.DraftMessage](txn, draftKey)
		if stderrors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrDraftNotFound, id)
		}
		if err != nil {
			return err
		}
		sent = fn(env.Record)
		seq, err := nextSeq(txn, prefixSent)
		if err != nil {
			return err
		}
		if err := txn.Delete(draftKey); err != nil {
			return err
		}
		return put(txn, key(prefixSent, id.String()), seq, sent)
	})
	if err != nil {
		return domain.SentMessage{}, errors.Persistence("promote draft", err)
	}
	return sent, nil
}

func (m MessageRepository) ListDrafts(ctx context.Context) ([]domain.DraftMessage, error) {
	var drafts []domain.DraftMessage
	err := m.kv.View(ctx, func(txn storage.Txn) (err error) {
		drafts, err = list[domain.DraftMessage](txn, prefixDraft)
		return err
	})
	return drafts, errors.Persistence("list drafts", err)
}

// PutDrafts writes all drafts or none. An existing draft keeps its position,
// a new one is appended. An id that was already sent is rejected.
func (m MessageRepository) PutDrafts(ctx context.Context, drafts []domain.DraftMessage) error {
	err := m.kv.Update(ctx, func(txn storage.Txn) error {
		for _, draft := range drafts {
			sent, err := exists(txn, key(prefixSent, draft.ID.String()))
			if err != nil {
				return err
			}
			if sent {
				return fmt.Errorf("%w: draft %s was already sent", errors.ErrValidation, draft.ID)
			}
			k := key(prefixDraft, draft.ID.String())
			env, err := get[domain.DraftMessage](txn, k)
			switch {
			case err == nil:
				if err := put(txn, k, env.Seq, draft); err != nil {
					return err
				}
			case stderrors.Is(err, storage.ErrKeyNotFound):
				seq, err := nextSeq(txn, prefixDraft)
				if err != nil {
					return err
				}
				if err := put(txn, k, seq, draft); err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	return errors.Persistence("put drafts", err)
}

func (m MessageRepository) ListSent(ctx context.Context) ([]domain.SentMessage, error) {
	var sent []domain.SentMessage
	err := m.kv.View(ctx, func(txn storage.Txn) (err error) {
		sent, err = list[domain.SentMessage](txn, prefixSent)
		return err
	})
	return sent, errors.Persistence("list sent", err)
}

func (m MessageRepository) InsertReceived(ctx context.Context, message domain.ReceivedMessage) error {
	err := m.kv.Update(ctx, func(txn storage.Txn) error {
		seq, err := nextSeq(txn, prefixInbox)
		if err != nil {
			return err
		}
		return put(txn, key(prefixInbox, message.ID.String()), seq, message)
	})
	return errors.Persistence("insert received", err)
}

func (m MessageRepository) UpdateReceived(ctx context.Context, id uuid.UUID, fn func(domain.ReceivedMessage) domain.ReceivedMessage) (domain.ReceivedMessage, error) {
	var updated domain.ReceivedMessage
	err := m.kv.Update(ctx, func(txn storage.Txn) error {
		k := key(prefixInbox, id.String())
		env, err := get[domain.ReceivedMessage](txn, k)
		if stderrors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrMessageNotFound, id)
		}
		if err != nil {
			return err
		}
		updated = fn(env.Record)
		return put(txn, k, env.Seq, updated)
	})
	if err != nil {
		return domain.ReceivedMessage{}, errors.Persistence("update received", err)
	}
	return updated, nil
}

func (m MessageRepository) ListReceived(ctx context.Context) ([]domain.ReceivedMessage, error) {
	var received []domain.ReceivedMessage
	err := m.kv.View(ctx, func(txn storage.Txn) (err error) {
		received, err = list[domain.ReceivedMessage](txn, prefixInbox)
		return err
	})
	return received, errors.Persistence("list received", err)
}
