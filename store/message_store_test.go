package store

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"uniportal/domain"
	"uniportal/errors"
	"uniportal/infrastructure/storage"
	"uniportal/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// fakeClock returns the configured instant and lets tests move it around.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = at
}

func newStore(t *testing.T, clock *fakeClock) *MessageStore {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv, err := storage.OpenBadger("", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return NewMessageStore(repositories.NewMessageRepository(kv, log), log, "Me", WithClock(clock.Now))
}

func payload(body string) domain.DraftPayload {
	return domain.DraftPayload{
		Subject:   "Question about the exam",
		Body:      body,
		Recipient: &domain.Contact{ID: "l-1", Name: "Dr. Ada", Kind: domain.KindLecturer},
		Course:    "CS101",
	}
}

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func Test_Create_Draft_Computes_Counts(t *testing.T) {
	req := require.New(t)
	s := newStore(t, &fakeClock{now: t0})

	draft, err := s.CreateDraft(context.Background(), payload("Hello there"))

	req.NoError(err)
	req.Equal(11, draft.CharacterCount)
	req.Equal(1, draft.EstimatedReadTime)
	req.Equal(t0, draft.CreatedAt)
	req.Equal(t0, draft.LastModified)
	req.False(draft.AutoSaved)
	req.Equal("Me", draft.SenderName)
}

func Test_Create_Draft_Without_Recipient(t *testing.T) {
	req := require.New(t)
	s := newStore(t, &fakeClock{now: t0})
	p := payload("Hello")
	p.Recipient = nil

	_, err := s.CreateDraft(context.Background(), p)

	req.ErrorIs(err, errors.ErrValidation)
	drafts, err := s.ListDrafts(context.Background())
	req.NoError(err)
	req.Empty(drafts)
}

func Test_Update_Then_Promote(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	clock := &fakeClock{now: t0}
	s := newStore(t, clock)

	// Given a draft updated by an auto-save
	d1, err := s.CreateDraft(ctx, payload("Hello"))
	req.NoError(err)
	clock.Set(t0.Add(time.Minute))
	updated, err := s.UpdateDraft(ctx, d1.ID, domain.DraftPatch{Priority: lo.ToPtr(domain.PriorityHigh)}, true)
	req.NoError(err)
	req.True(updated.AutoSaved)

	// When it is sent
	clock.Set(t0.Add(2 * time.Minute))
	sent, err := s.PromoteDraftToSent(ctx, d1.ID)
	req.NoError(err)

	// Then it only exists as a sent message
	drafts, err := s.ListDrafts(ctx)
	req.NoError(err)
	req.Empty(drafts)
	sentMessages, err := s.ListSent(ctx)
	req.NoError(err)
	req.Len(sentMessages, 1)
	req.Equal(d1.ID, sentMessages[0].ID)
	req.Equal(domain.PriorityHigh, sentMessages[0].Priority)
	req.Equal(t0.Add(2*time.Minute), sent.SentAt)
	req.Equal(domain.StatusSent, sent.Status)
}

func Test_Promote_Unknown_Draft(t *testing.T) {
	req := require.New(t)
	s := newStore(t, &fakeClock{now: t0})

	_, err := s.PromoteDraftToSent(context.Background(), uuid.New())

	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Update_Unknown_Draft(t *testing.T) {
	req := require.New(t)
	s := newStore(t, &fakeClock{now: t0})

	_, err := s.UpdateDraft(context.Background(), uuid.New(), domain.DraftPatch{Body: lo.ToPtr("x")}, false)

	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Character_Count_Follows_Every_Write(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t, &fakeClock{now: t0})
	draft, err := s.CreateDraft(ctx, payload(""))
	req.NoError(err)

	for _, body := range []string{"a", strings.Repeat("é", 250), "", "Grüße aus Zürich"} {
		draft, err = s.UpdateDraft(ctx, draft.ID, domain.DraftPatch{Body: lo.ToPtr(body)}, false)
		req.NoError(err)
		req.Equal(len([]rune(body)), draft.CharacterCount)

		stored, err := s.GetDraft(ctx, draft.ID)
		req.NoError(err)
		req.Equal(len([]rune(body)), stored.CharacterCount)
	}
}

func Test_Last_Modified_Is_Monotonic(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	clock := &fakeClock{now: t0}
	s := newStore(t, clock)
	draft, err := s.CreateDraft(ctx, payload("x"))
	req.NoError(err)

	steps := []struct {
		at        time.Time
		autoSaved bool
	}{
		{t0.Add(time.Minute), true},
		{t0.Add(30 * time.Second), false},
		{t0.Add(3 * time.Minute), true},
		{t0.Add(-time.Hour), false},
	}
	previous := draft.LastModified
	for _, step := range steps {
		clock.Set(step.at)
		draft, err = s.UpdateDraft(ctx, draft.ID, domain.DraftPatch{Subject: lo.ToPtr(step.at.String())}, step.autoSaved)
		req.NoError(err)
		req.False(draft.LastModified.Before(previous))
		req.False(draft.LastModified.Before(draft.CreatedAt))
		req.Equal(step.autoSaved, draft.AutoSaved)
		previous = draft.LastModified
	}
	req.Equal(t0.Add(3*time.Minute), draft.LastModified)
}

func Test_Delete_Drafts_Twice(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t, &fakeClock{now: t0})
	keep, err := s.CreateDraft(ctx, payload("keep"))
	req.NoError(err)
	drop, err := s.CreateDraft(ctx, payload("drop"))
	req.NoError(err)

	req.NoError(s.DeleteDrafts(ctx, []uuid.UUID{drop.ID, drop.ID}))
	once, err := s.ListDrafts(ctx)
	req.NoError(err)
	req.NoError(s.DeleteDrafts(ctx, []uuid.UUID{drop.ID}))
	twice, err := s.ListDrafts(ctx)
	req.NoError(err)

	req.Equal(once, twice)
	req.Len(twice, 1)
	req.Equal(keep.ID, twice[0].ID)
}

func Test_Corpus_Lists_Sent_Then_Received(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t, &fakeClock{now: t0})

	received, err := s.Receive(ctx, domain.ReceivedPayload{
		Sender:  domain.Contact{Name: "Prof. Lin", Kind: domain.KindLecturer},
		Subject: "Exam room changed",
	})
	req.NoError(err)
	draft, err := s.CreateDraft(ctx, payload("Hello"))
	req.NoError(err)
	_, err = s.PromoteDraftToSent(ctx, draft.ID)
	req.NoError(err)

	corpus, err := s.Corpus(ctx)
	req.NoError(err)
	req.Len(corpus, 2)
	req.Equal(draft.ID, corpus[0].ID)
	req.Equal(domain.SourceSent, corpus[0].Source)
	req.Equal("Me", corpus[0].SenderName)
	req.Equal(received.ID, corpus[1].ID)
	req.False(corpus[1].Read)

	_, err = s.MarkRead(ctx, received.ID)
	req.NoError(err)
	corpus, err = s.Corpus(ctx)
	req.NoError(err)
	req.True(corpus[1].Read)
}

func Test_Export_Import_Round_Trip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	source := newStore(t, &fakeClock{now: t0})
	first, err := source.CreateDraft(ctx, payload("first"))
	req.NoError(err)
	second, err := source.CreateDraft(ctx, payload("second"))
	req.NoError(err)

	var buf bytes.Buffer
	count, err := source.ExportDrafts(ctx, &buf)
	req.NoError(err)
	req.Equal(2, count)

	target := newStore(t, &fakeClock{now: t0.Add(time.Hour)})
	count, err = target.ImportDrafts(ctx, &buf)
	req.NoError(err)
	req.Equal(2, count)

	drafts, err := target.ListDrafts(ctx)
	req.NoError(err)
	req.Len(drafts, 2)
	req.Equal(first.ID, drafts[0].ID)
	req.Equal(second.ID, drafts[1].ID)
	req.True(first.CreatedAt.Equal(drafts[0].CreatedAt))
	req.Equal(5, drafts[0].CharacterCount)
}

func Test_Import_Rejects_Invalid_Input(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "drafts"},
		{"missing id", `[{"subject":"x","recipient":{"name":"Ada","kind":"lecturer"}}]`},
		{"bad recipient", `[{"id":"6f1c1a9e-3f7b-4c59-9a43-0e3f4c1d2b10","recipient":{"name":"","kind":"lecturer"}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, &fakeClock{now: t0})
			_, err := s.ImportDrafts(context.Background(), strings.NewReader(tt.input))
			require.ErrorIs(t, err, errors.ErrValidation)
		})
	}
}
