package lifecycle

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"uniportal/contract"
	"uniportal/domain"
	"uniportal/errors"

	"github.com/google/uuid"
)

type State string

const (
	StateComposing State = "composing"
	StateSaved     State = "saved"
	StateSent      State = "sent"
	StateDeleted   State = "deleted"
	StateUnknown   State = "unknown"
)

// SessionID identifies a compose session, i.e. one open editor.
type SessionID string

type session struct {
	id      SessionID
	draftID uuid.UUID
	state   State
	pending *pendingSave
	// generation invalidates timers that fired after being superseded.
	generation uint64
}

type pendingSave struct {
	timer      *time.Timer
	payload    domain.DraftPayload
	generation uint64
}

// Controller enforces the draft state machine on top of the store.
// One mutex serializes every operation, timer callbacks included.
type Controller struct {
	mu              sync.Mutex
	store           contract.IDraftStore
	log             *slog.Logger
	autoSaveDelay   time.Duration
	sessions        map[SessionID]*session
	retired         map[uuid.UUID]State
	onAutoSaveError func(SessionID, error)
	closed          bool
}

type Option func(*Controller)

// WithAutoSaveErrorHandler registers fn to be told about failed auto-saves.
// fn runs outside the controller lock.
func WithAutoSaveErrorHandler(fn func(SessionID, error)) Option {
	return func(c *Controller) { c.onAutoSaveError = fn }
}

func NewController(store contract.IDraftStore, log *slog.Logger, autoSaveDelay time.Duration, opts ...Option) *Controller {
	c := &Controller{
		store:         store,
		log:           log,
		autoSaveDelay: autoSaveDelay,
		sessions:      make(map[SessionID]*session),
		retired:       make(map[uuid.UUID]State),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose opens a session for a message that does not exist in the store yet.
func (c *Controller) Compose() SessionID {
	c.mu.Lock()
	defer c.mu.Unlock()

	sid := SessionID(uuid.NewString())
	c.sessions[sid] = &session{id: sid, state: StateComposing}
	c.log.Debug("Compose session opened", "session", sid)
	return sid
}

// Open starts a session on an existing draft.
func (c *Controller) Open(ctx context.Context, draftID uuid.UUID) (SessionID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireSaved(ctx, draftID); err != nil {
		return "", err
	}
	for _, s := range c.sessions {
		if s.draftID == draftID && s.state == StateSaved {
			return s.id, nil
		}
	}
	sid := SessionID(uuid.NewString())
	c.sessions[sid] = &session{id: sid, draftID: draftID, state: StateSaved}
	c.log.Debug("Draft session opened", "session", sid, "draft", draftID)
	return sid, nil
}

// Save is the explicit save of the editor content. A pending auto-save for
// the session is cancelled first.
func (c *Controller) Save(ctx context.Context, sid SessionID, payload domain.DraftPayload) (domain.DraftMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.liveSession(sid)
	if err != nil {
		return domain.DraftMessage{}, err
	}
	c.cancelPending(s)
	return c.save(ctx, s, payload, false)
}

// SaveAndSend saves the editor content and sends it. A composed message is
// always materialized as a draft before it is sent.
func (c *Controller) SaveAndSend(ctx context.Context, sid SessionID, payload domain.DraftPayload) (domain.SentMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.liveSession(sid)
	if err != nil {
		return domain.SentMessage{}, err
	}
	c.cancelPending(s)
	draft, err := c.save(ctx, s, payload, false)
	if err != nil {
		return domain.SentMessage{}, err
	}
	return c.send(ctx, draft.ID)
}

// ScheduleAutoSave debounces an implicit save. A newer call replaces the
// pending payload and restarts the delay.
func (c *Controller) ScheduleAutoSave(sid SessionID, payload domain.DraftPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("%w: controller closed", errors.ErrInvalidTransition)
	}
	s, err := c.liveSession(sid)
	if err != nil {
		return err
	}
	c.cancelPending(s)
	s.generation++
	generation := s.generation
	s.pending = &pendingSave{
		payload:    payload,
		generation: generation,
		timer: time.AfterFunc(c.autoSaveDelay, func() {
			c.fireAutoSave(sid, generation)
		}),
	}
	return nil
}

func (c *Controller) fireAutoSave(sid SessionID, generation uint64) {
	c.mu.Lock()
	s, ok := c.sessions[sid]
	if !ok || s.pending == nil || s.pending.generation != generation {
		c.mu.Unlock()
		return
	}
	payload := s.pending.payload
	s.pending = nil
	draft, err := c.save(context.Background(), s, payload, true)
	onError := c.onAutoSaveError
	c.mu.Unlock()

	if err != nil {
		c.log.Error("Auto-save failed", "session", sid, "error", err)
		if onError != nil {
			onError(sid, err)
		}
		return
	}
	c.log.Debug("Auto-saved", "session", sid, "draft", draft.ID)
}

// Edit patches a saved draft by id, outside any session.
// An explicit edit cancels pending auto-saves of sessions on that draft.
func (c *Controller) Edit(ctx context.Context, draftID uuid.UUID, patch domain.DraftPatch, autoSaved bool) (domain.DraftMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireSaved(ctx, draftID); err != nil {
		return domain.DraftMessage{}, err
	}
	if !autoSaved {
		c.cancelForDraft(draftID)
	}
	return c.store.UpdateDraft(ctx, draftID, patch, autoSaved)
}

// Send promotes a saved draft. Any other state is an invalid transition.
func (c *Controller) Send(ctx context.Context, draftID uuid.UUID) (domain.SentMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireSaved(ctx, draftID); err != nil {
		return domain.SentMessage{}, err
	}
	return c.send(ctx, draftID)
}

// Delete removes a saved draft. Any other state is an invalid transition.
func (c *Controller) Delete(ctx context.Context, draftID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireSaved(ctx, draftID); err != nil {
		return err
	}
	c.cancelForDraft(draftID)
	if err := c.store.DeleteDrafts(ctx, []uuid.UUID{draftID}); err != nil {
		return err
	}
	c.retire(draftID, StateDeleted)
	return nil
}

// DeleteMany is the bulk delete. Ids that are unknown or already terminal
// are skipped.
func (c *Controller) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var saved []uuid.UUID
	for _, id := range ids {
		if _, ok := c.retired[id]; ok {
			continue
		}
		if _, err := c.store.GetDraft(ctx, id); err != nil {
			if stderrors.Is(err, errors.ErrNotFound) {
				continue
			}
			return 0, err
		}
		saved = append(saved, id)
	}
	for _, id := range saved {
		c.cancelForDraft(id)
	}
	if err := c.store.DeleteDrafts(ctx, saved); err != nil {
		return 0, err
	}
	for _, id := range saved {
		c.retire(id, StateDeleted)
	}
	return len(saved), nil
}

// Discard closes a session without touching the store. A saved draft stays.
func (c *Controller) Discard(sid SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sessions[sid]; ok {
		c.cancelPending(s)
		delete(c.sessions, sid)
	}
}

// State reports the lifecycle state of a draft id. Ids the controller never
// saw and the store does not know are StateUnknown.
func (c *Controller) State(ctx context.Context, draftID uuid.UUID) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state, ok := c.retired[draftID]; ok {
		return state, nil
	}
	_, err := c.store.GetDraft(ctx, draftID)
	switch {
	case err == nil:
		return StateSaved, nil
	case stderrors.Is(err, errors.ErrNotFound):
		return StateUnknown, nil
	default:
		return StateUnknown, err
	}
}

// SessionState reports the state of a session and the draft bound to it.
func (c *Controller) SessionState(sid SessionID) (State, uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[sid]
	if !ok {
		return StateUnknown, uuid.Nil, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, sid)
	}
	return s.state, s.draftID, nil
}

// Close stops every pending auto-save. Timers that already fired become no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.sessions {
		c.cancelPending(s)
	}
	c.closed = true
}

func (c *Controller) save(ctx context.Context, s *session, payload domain.DraftPayload, autoSaved bool) (domain.DraftMessage, error) {
	if s.state == StateComposing {
		create := c.store.CreateDraft
		if autoSaved {
			create = c.store.CreateAutoSavedDraft
		}
		draft, err := create(ctx, payload)
		if err != nil {
			return domain.DraftMessage{}, err
		}
		s.draftID = draft.ID
		s.state = StateSaved
		return draft, nil
	}
	draft, err := c.store.UpdateDraft(ctx, s.draftID, payload.AsPatch(), autoSaved)
	if stderrors.Is(err, errors.ErrNotFound) {
		// removed behind the controller's back
		s.state = StateDeleted
		return domain.DraftMessage{}, fmt.Errorf("%w: %w", errors.ErrInvalidTransition, err)
	}
	return draft, err
}

func (c *Controller) send(ctx context.Context, draftID uuid.UUID) (domain.SentMessage, error) {
	c.cancelForDraft(draftID)
	sent, err := c.store.PromoteDraftToSent(ctx, draftID)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return domain.SentMessage{}, fmt.Errorf("%w: %w", errors.ErrInvalidTransition, err)
		}
		return domain.SentMessage{}, err
	}
	c.retire(draftID, StateSent)
	return sent, nil
}

// requireSaved re-checks the draft against the store before any mutation.
func (c *Controller) requireSaved(ctx context.Context, draftID uuid.UUID) error {
	if state, ok := c.retired[draftID]; ok {
		return fmt.Errorf("%w: draft %s is %s", errors.ErrInvalidTransition, draftID, state)
	}
	_, err := c.store.GetDraft(ctx, draftID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return fmt.Errorf("%w: %w", errors.ErrInvalidTransition, err)
	}
	return err
}

func (c *Controller) liveSession(sid SessionID) (*session, error) {
	s, ok := c.sessions[sid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, sid)
	}
	if s.state != StateComposing && s.state != StateSaved {
		return nil, fmt.Errorf("%w: session %s is %s", errors.ErrInvalidTransition, sid, s.state)
	}
	return s, nil
}

func (c *Controller) cancelPending(s *session) {
	if s.pending == nil {
		return
	}
	s.pending.timer.Stop()
	s.pending = nil
}

func (c *Controller) cancelForDraft(draftID uuid.UUID) {
	for _, s := range c.sessions {
		if s.draftID == draftID {
			c.cancelPending(s)
		}
	}
}

// retire marks the id and every session bound to it as terminal.
func (c *Controller) retire(draftID uuid.UUID, state State) {
	c.retired[draftID] = state
	for _, s := range c.sessions {
		if s.draftID == draftID {
			s.state = state
		}
	}
	c.log.Info("Draft retired", "draft", draftID, "state", state)
}
