package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"uniportal/domain"
	"uniportal/errors"
	"uniportal/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MessageStore is the single source of truth for drafts, sent and received
// messages. It holds no copy of the records, every read goes to the repository.
type MessageStore struct {
	repository repositories.IMessageRepository
	log        *slog.Logger
	ownerName  string
	now        func() time.Time
	newID      func() uuid.UUID
}

type Option func(*MessageStore)

func WithClock(now func() time.Time) Option {
	return func(s *MessageStore) { s.now = now }
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *MessageStore) { s.newID = newID }
}

func NewMessageStore(repository repositories.IMessageRepository, log *slog.Logger, ownerName string, opts ...Option) *MessageStore {
	s := &MessageStore{
		repository: repository,
		log:        log,
		ownerName:  ownerName,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateDraft materializes a payload after an explicit save.
func (s *MessageStore) CreateDraft(ctx context.Context, payload domain.DraftPayload) (domain.DraftMessage, error) {
	return s.createDraft(ctx, payload, false)
}

// CreateAutoSavedDraft materializes a payload after an auto-save timer fired.
func (s *MessageStore) CreateAutoSavedDraft(ctx context.Context, payload domain.DraftPayload) (domain.DraftMessage, error) {
	return s.createDraft(ctx, payload, true)
}

func (s *MessageStore) createDraft(ctx context.Context, payload domain.DraftPayload, autoSaved bool) (domain.DraftMessage, error) {
	if err := domain.ValidatePayload(payload); err != nil {
		return domain.DraftMessage{}, err
	}
	draft := domain.NewDraft(s.newID(), payload, s.ownerName, s.now(), autoSaved)
	if err := s.repository.InsertDraft(ctx, draft); err != nil {
		return domain.DraftMessage{}, err
	}
	s.log.Info("Draft created", "id", draft.ID, "auto_saved", autoSaved, "characters", draft.CharacterCount)
	return draft, nil
}

// UpdateDraft merges the patch into the stored draft. lastModified takes the
// later of now and its previous value.
func (s *MessageStore) UpdateDraft(ctx context.Context, id uuid.UUID, patch domain.DraftPatch, autoSaved bool) (domain.DraftMessage, error) {
	if err := domain.ValidatePatch(patch); err != nil {
		return domain.DraftMessage{}, err
	}
	draft, err := s.repository.UpdateDraft(ctx, id, func(current domain.DraftMessage) (domain.DraftMessage, error) {
		return current.Apply(patch, autoSaved, s.now()), nil
	})
	if err != nil {
		return domain.DraftMessage{}, err
	}
	s.log.Info("Draft updated", "id", id, "auto_saved", autoSaved, "characters", draft.CharacterCount)
	return draft, nil
}

func (s *MessageStore) GetDraft(ctx context.Context, id uuid.UUID) (domain.DraftMessage, error) {
	return s.repository.GetDraft(ctx, id)
}

// DeleteDrafts removes every listed draft. Unknown ids are ignored.
func (s *MessageStore) DeleteDrafts(ctx context.Context, ids []uuid.UUID) error {
	removed, err := s.repository.DeleteDrafts(ctx, lo.Uniq(ids))
	if err != nil {
		return err
	}
	s.log.Info("Drafts deleted", "requested", len(ids), "removed", removed)
	return nil
}

// PromoteDraftToSent freezes the draft into a sent message under the same id.
func (s *MessageStore) PromoteDraftToSent(ctx context.Context, id uuid.UUID) (domain.SentMessage, error) {
	sent, err := s.repository.PromoteDraft(ctx, id, func(draft domain.DraftMessage) domain.SentMessage {
		return draft.Freeze(s.now())
	})
	if err != nil {
		return domain.SentMessage{}, err
	}
	s.log.Info("Draft sent", "id", id, "recipient", sent.Recipient.Name)
	return sent, nil
}

func (s *MessageStore) ListDrafts(ctx context.Context) ([]domain.DraftMessage, error) {
	return s.repository.ListDrafts(ctx)
}

func (s *MessageStore) ListSent(ctx context.Context) ([]domain.SentMessage, error) {
	return s.repository.ListSent(ctx)
}

// Receive stores an inbound message as unread.
func (s *MessageStore) Receive(ctx context.Context, payload domain.ReceivedPayload) (domain.ReceivedMessage, error) {
	if err := domain.ValidateReceived(payload); err != nil {
		return domain.ReceivedMessage{}, err
	}
	message := domain.NewReceived(s.newID(), payload, s.now())
	if err := s.repository.InsertReceived(ctx, message); err != nil {
		return domain.ReceivedMessage{}, err
	}
	s.log.Info("Message received", "id", message.ID, "sender", message.Sender.Name)
	return message, nil
}

func (s *MessageStore) MarkRead(ctx context.Context, id uuid.UUID) (domain.ReceivedMessage, error) {
	return s.repository.UpdateReceived(ctx, id, func(message domain.ReceivedMessage) domain.ReceivedMessage {
		message.Read = true
		return message
	})
}

func (s *MessageStore) ListReceived(ctx context.Context) ([]domain.ReceivedMessage, error) {
	return s.repository.ListReceived(ctx)
}

// Corpus returns the searchable messages: sent ones first, then received
// ones, each in insertion order. Drafts are not searchable.
func (s *MessageStore) Corpus(ctx context.Context) ([]domain.Message, error) {
	sent, err := s.repository.ListSent(ctx)
	if err != nil {
		return nil, err
	}
	received, err := s.repository.ListReceived(ctx)
	if err != nil {
		return nil, err
	}
	corpus := make([]domain.Message, 0, len(sent)+len(received))
	for _, message := range sent {
		corpus = append(corpus, domain.FromSent(message))
	}
	for _, message := range received {
		corpus = append(corpus, domain.FromReceived(message))
	}
	s.log.Debug("Corpus snapshot", "sent", len(sent), "received", len(received))
	return corpus, nil
}

// ExportDrafts writes the whole draft set as a JSON array.
func (s *MessageStore) ExportDrafts(ctx context.Context, w io.Writer) (int, error) {
	drafts, err := s.repository.ListDrafts(ctx)
	if err != nil {
		return 0, err
	}
	if drafts == nil {
		drafts = []domain.DraftMessage{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(drafts); err != nil {
		return 0, fmt.Errorf("encode drafts: %w", err)
	}
	s.log.Info("Drafts exported", "count", len(drafts))
	return len(drafts), nil
}

// ImportDrafts reads a JSON array produced by ExportDrafts. Ids and
// timestamps are kept, derived fields are recomputed. Drafts with an id
// already stored are overwritten. Nothing is written if any entry is invalid.
func (s *MessageStore) ImportDrafts(ctx context.Context, r io.Reader) (int, error) {
	var drafts []domain.DraftMessage
	if err := json.NewDecoder(r).Decode(&drafts); err != nil {
		return 0, fmt.Errorf("%w: decode drafts: %w", errors.ErrValidation, err)
	}
	for i, draft := range drafts {
		if draft.ID == uuid.Nil {
			return 0, fmt.Errorf("%w: draft #%d has no id", errors.ErrValidation, i)
		}
		recipient := draft.Recipient
		if err := domain.ValidatePayload(domain.DraftPayload{
			Recipient:   &recipient,
			Category:    draft.Category,
			Priority:    draft.Priority,
			Attachments: draft.Attachments,
			SenderRole:  draft.SenderRole,
		}); err != nil {
			return 0, fmt.Errorf("draft %s: %w", draft.ID, err)
		}
		if draft.CreatedAt.IsZero() {
			draft.CreatedAt = s.now()
		}
		drafts[i] = draft.Normalize()
	}
	if err := s.repository.PutDrafts(ctx, drafts); err != nil {
		return 0, err
	}
	s.log.Info("Drafts imported", "count", len(drafts))
	return len(drafts), nil
}
