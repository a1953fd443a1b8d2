package lifecycle

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"uniportal/domain"
	"uniportal/errors"
	"uniportal/infrastructure/storage"
	"uniportal/mocks"
	"uniportal/repositories"
	"uniportal/store"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMessageStore(t *testing.T) *store.MessageStore {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv, err := storage.OpenBadger("", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return store.NewMessageStore(repositories.NewMessageRepository(kv, log), log, "Me")
}

func newController(t *testing.T, s *store.MessageStore, delay time.Duration, opts ...Option) *Controller {
	c := NewController(s, slog.New(slog.NewTextHandler(io.Discard, nil)), delay, opts...)
	t.Cleanup(c.Close)
	return c
}

func payload(body string) domain.DraftPayload {
	return domain.DraftPayload{
		Subject:   "Project deadline",
		Body:      body,
		Recipient: &domain.Contact{Name: "Dr. Ada", Kind: domain.KindLecturer},
	}
}

func Test_Compose_Save_Send(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMessageStore(t)
	c := newController(t, s, time.Hour)

	// Given a composed message
	sid := c.Compose()
	state, draftID, err := c.SessionState(sid)
	req.NoError(err)
	req.Equal(StateComposing, state)
	req.Equal(uuid.Nil, draftID)

	// When it is saved
	draft, err := c.Save(ctx, sid, payload("first version"))
	req.NoError(err)
	state, err = c.State(ctx, draft.ID)
	req.NoError(err)
	req.Equal(StateSaved, state)

	// And saved again
	draft, err = c.Save(ctx, sid, payload("second version"))
	req.NoError(err)
	req.Equal("second version", draft.Body)
	drafts, err := s.ListDrafts(ctx)
	req.NoError(err)
	req.Len(drafts, 1)

	// And sent
	sent, err := c.Send(ctx, draft.ID)
	req.NoError(err)
	req.Equal(draft.ID, sent.ID)

	// Then the id is retired
	state, err = c.State(ctx, draft.ID)
	req.NoError(err)
	req.Equal(StateSent, state)
	state, _, err = c.SessionState(sid)
	req.NoError(err)
	req.Equal(StateSent, state)

	_, err = c.Send(ctx, draft.ID)
	req.ErrorIs(err, errors.ErrInvalidTransition)
	req.ErrorIs(c.Delete(ctx, draft.ID), errors.ErrInvalidTransition)
	_, err = c.Save(ctx, sid, payload("too late"))
	req.ErrorIs(err, errors.ErrInvalidTransition)
}

func Test_Send_Unknown_Draft(t *testing.T) {
	req := require.New(t)
	c := newController(t, newMessageStore(t), time.Hour)

	_, err := c.Send(context.Background(), uuid.New())

	req.ErrorIs(err, errors.ErrInvalidTransition)
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Save_And_Send_Materializes_A_Draft(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMessageStore(t)
	c := newController(t, s, time.Hour)

	sent, err := c.SaveAndSend(ctx, c.Compose(), payload("straight out"))
	req.NoError(err)

	req.Equal("straight out", sent.Body)
	state, err := c.State(ctx, sent.ID)
	req.NoError(err)
	req.Equal(StateSent, state)
	drafts, err := s.ListDrafts(ctx)
	req.NoError(err)
	req.Empty(drafts)
}

func Test_Auto_Save_Debounces_To_Last_Payload(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMessageStore(t)
	c := newController(t, s, 50*time.Millisecond)
	sid := c.Compose()

	// Given three keystrokes in a row
	for _, body := range []string{"H", "He", "Hello"} {
		req.NoError(c.ScheduleAutoSave(sid, payload(body)))
	}

	// Then a single auto-saved draft holds the last content
	req.Eventually(func() bool {
		drafts, err := s.ListDrafts(ctx)
		return err == nil && len(drafts) == 1
	}, 2*time.Second, 10*time.Millisecond)

	drafts, err := s.ListDrafts(ctx)
	req.NoError(err)
	req.Len(drafts, 1)
	req.Equal("Hello", drafts[0].Body)
	req.True(drafts[0].AutoSaved)
	state, _, err := c.SessionState(sid)
	req.NoError(err)
	req.Equal(StateSaved, state)
}

func Test_Explicit_Save_Cancels_Pending_Auto_Save(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMessageStore(t)
	c := newController(t, s, 50*time.Millisecond)
	sid := c.Compose()

	req.NoError(c.ScheduleAutoSave(sid, payload("stale")))
	draft, err := c.Save(ctx, sid, payload("explicit"))
	req.NoError(err)

	time.Sleep(200 * time.Millisecond)

	stored, err := s.GetDraft(ctx, draft.ID)
	req.NoError(err)
	req.Equal("explicit", stored.Body)
	req.False(stored.AutoSaved)
}

func Test_Send_Cancels_Pending_Auto_Save(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMessageStore(t)
	c := newController(t, s, 50*time.Millisecond)
	sid := c.Compose()
	draft, err := c.Save(ctx, sid, payload("v1"))
	req.NoError(err)

	req.NoError(c.ScheduleAutoSave(sid, payload("v2")))
	_, err = c.Send(ctx, draft.ID)
	req.NoError(err)

	time.Sleep(200 * time.Millisecond)

	drafts, err := s.ListDrafts(ctx)
	req.NoError(err)
	req.Empty(drafts, "a cancelled auto-save must not resurrect the draft")
	sent, err := s.ListSent(ctx)
	req.NoError(err)
	req.Len(sent, 1)
	req.Equal("v1", sent[0].Body)
}

func Test_Superseded_Timer_Is_A_No_Op(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMessageStore(t)
	c := newController(t, s, time.Hour)
	sid := c.Compose()

	// Given a timer replaced by a newer schedule
	req.NoError(c.ScheduleAutoSave(sid, payload("old")))
	req.NoError(c.ScheduleAutoSave(sid, payload("new")))

	// When the first timer fires anyway
	c.fireAutoSave(sid, 1)

	// Then nothing is written
	drafts, err := s.ListDrafts(ctx)
	req.NoError(err)
	req.Empty(drafts)

	// And the current generation still saves
	c.fireAutoSave(sid, 2)
	drafts, err = s.ListDrafts(ctx)
	req.NoError(err)
	req.Len(drafts, 1)
	req.Equal("new", drafts[0].Body)
}

func Test_Auto_Save_Failure_Is_Reported(t *testing.T) {
	req := require.New(t)
	failures := make(chan error, 1)
	c := newController(t, newMessageStore(t), 10*time.Millisecond, WithAutoSaveErrorHandler(func(_ SessionID, err error) {
		failures <- err
	}))
	sid := c.Compose()
	p := payload("no recipient yet")
	p.Recipient = nil

	req.NoError(c.ScheduleAutoSave(sid, p))

	select {
	case err := <-failures:
		req.ErrorIs(err, errors.ErrValidation)
	case <-time.After(2 * time.Second):
		req.Fail("auto-save failure was not reported")
	}
	state, _, err := c.SessionState(sid)
	req.NoError(err)
	req.Equal(StateComposing, state)
}

func Test_Delete_Many_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMessageStore(t)
	c := newController(t, s, time.Hour)
	first, err := c.Save(ctx, c.Compose(), payload("one"))
	req.NoError(err)
	second, err := c.Save(ctx, c.Compose(), payload("two"))
	req.NoError(err)
	sent, err := c.SaveAndSend(ctx, c.Compose(), payload("three"))
	req.NoError(err)

	removed, err := c.DeleteMany(ctx, []uuid.UUID{first.ID, second.ID, sent.ID, uuid.New()})
	req.NoError(err)
	req.Equal(2, removed)
	removed, err = c.DeleteMany(ctx, []uuid.UUID{first.ID, second.ID})
	req.NoError(err)
	req.Equal(0, removed)

	state, err := c.State(ctx, first.ID)
	req.NoError(err)
	req.Equal(StateDeleted, state)
	state, err = c.State(ctx, sent.ID)
	req.NoError(err)
	req.Equal(StateSent, state)
	req.ErrorIs(c.Delete(ctx, first.ID), errors.ErrInvalidTransition)
}

func Test_Open_And_Edit_Existing_Draft(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newMessageStore(t)
	c := newController(t, s, time.Hour)
	draft, err := s.CreateDraft(ctx, payload("from elsewhere"))
	req.NoError(err)

	sid, err := c.Open(ctx, draft.ID)
	req.NoError(err)
	again, err := c.Open(ctx, draft.ID)
	req.NoError(err)
	req.Equal(sid, again)

	edited, err := c.Edit(ctx, draft.ID, domain.DraftPatch{Priority: lo.ToPtr(domain.PriorityHigh)}, false)
	req.NoError(err)
	req.Equal(domain.PriorityHigh, edited.Priority)

	c.Discard(sid)
	_, _, err = c.SessionState(sid)
	req.ErrorIs(err, errors.ErrSessionNotFound)
	state, err := c.State(ctx, draft.ID)
	req.NoError(err)
	req.Equal(StateSaved, state)

	_, err = c.Open(ctx, uuid.New())
	req.ErrorIs(err, errors.ErrInvalidTransition)
}

func Test_Send_Rechecks_The_Store(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	draftStore := mocks.NewMockIDraftStore(ctrl)
	c := NewController(draftStore, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour)
	defer c.Close()
	id := uuid.New()

	// Given a draft removed by another window
	draftStore.EXPECT().GetDraft(gomock.Any(), id).Return(domain.DraftMessage{}, errors.ErrDraftNotFound)

	// When the stale UI still tries to send it
	_, err := c.Send(ctx, id)

	// Then promotion is never attempted
	req.ErrorIs(err, errors.ErrInvalidTransition)
	req.ErrorIs(err, errors.ErrNotFound)
}
