package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"uniportal/errors"
	"uniportal/infrastructure/storage"
	"uniportal/internal"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestApp(t *testing.T) *app {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	kv, err := storage.OpenBadger("", log)
	require.NoError(t, err)
	a := newApp(internal.Config{OwnerName: "Me", AutoSaveDelay: time.Second}, language.English, log, kv)
	t.Cleanup(func() {
		a.controller.Close()
		_ = kv.Close()
	})
	return a
}

func execute(a *app, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func Test_Create_Send_And_Search(t *testing.T) {
	req := require.New(t)
	a := newTestApp(t)
	ctx := context.Background()

	// Given a draft created from the command line
	_, err := execute(a, "draft", "create", "--to", "Dr. Smith", "--subject", "Exam question", "--body", "About the exam", "--course", "CS101")
	req.NoError(err)
	drafts, err := a.store.ListDrafts(ctx)
	req.NoError(err)
	req.Len(drafts, 1)
	id := drafts[0].ID.String()

	// When it is sent
	out, err := execute(a, "draft", "send", id)
	req.NoError(err)
	req.Contains(out, "Sent "+id)

	// Then it is found by a search with flags
	out, err = execute(a, "search", "exam", "--course", "CS101", "--sort", "date-newest")
	req.NoError(err)
	req.Contains(out, id)

	out, err = execute(a, "draft", "list")
	req.NoError(err)
	req.NotContains(out, id)
}

func Test_Create_Without_Recipient_Fails(t *testing.T) {
	req := require.New(t)
	a := newTestApp(t)

	_, err := execute(a, "draft", "create", "--subject", "Hi")

	req.ErrorIs(err, errors.ErrMissingRecipient)
}

func Test_Attach_Detects_Media_Kind(t *testing.T) {
	req := require.New(t)
	a := newTestApp(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.txt")
	req.NoError(os.WriteFile(path, []byte("hello world\n"), 0o600))

	_, err := execute(a, "draft", "create", "--to", "Dr. Smith", "--subject", "Notes")
	req.NoError(err)
	drafts, err := a.store.ListDrafts(ctx)
	req.NoError(err)

	_, err = execute(a, "draft", "attach", drafts[0].ID.String(), path)
	req.NoError(err)

	draft, err := a.store.GetDraft(ctx, drafts[0].ID)
	req.NoError(err)
	req.Len(draft.Attachments, 1)
	req.Equal("notes.txt", draft.Attachments[0].Name)
	req.Equal(int64(12), draft.Attachments[0].Size)
	req.True(strings.HasPrefix(draft.Attachments[0].MediaKind, "text/plain"))
}

func Test_Export_Then_Import(t *testing.T) {
	req := require.New(t)
	a := newTestApp(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drafts.json")

	_, err := execute(a, "draft", "create", "--to", "Dr. Smith", "--subject", "Keep me", "--tag", "exam", "--tag", "exam")
	req.NoError(err)
	_, err = execute(a, "draft", "export", "--out", path)
	req.NoError(err)
	drafts, err := a.store.ListDrafts(ctx)
	req.NoError(err)
	_, err = execute(a, "draft", "delete", drafts[0].ID.String())
	req.NoError(err)

	out, err := execute(a, "draft", "import", path)

	req.NoError(err)
	req.Contains(out, "1 draft(s) imported")
	restored, err := a.store.GetDraft(ctx, drafts[0].ID)
	req.NoError(err)
	req.Equal([]string{"exam"}, restored.Tags)
}

func Test_Saved_Search_Commands(t *testing.T) {
	req := require.New(t)
	a := newTestApp(t)

	_, err := execute(a, "inbox", "receive", "--from", "Prof. Lin", "--subject", "Final exam", "--body", "Room 4", "--course", "CS101")
	req.NoError(err)

	out, err := execute(a, "saved", "save", "Exams", "exam", "--unread")
	req.NoError(err)
	req.Contains(out, "1 result(s)")

	_, err = execute(a, "saved", "save", "Exams", "other")
	req.ErrorIs(err, errors.ErrDuplicateSearchName)

	out, err = execute(a, "saved", "list")
	req.NoError(err)
	req.Contains(out, "Exams")
}

func Test_Search_Keeps_Quotes_Inside_Arguments(t *testing.T) {
	req := require.New(t)
	a := newTestApp(t)
	ctx := context.Background()

	// Given two messages whose subjects carry double quotes
	_, err := execute(a, "inbox", "receive", "--from", "Prof. Lin", "--subject", `Say "hi" now`, "--body", "Greetings")
	req.NoError(err)
	_, err = execute(a, "inbox", "receive", "--from", "Prof. Lin", "--subject", `Notes on a"b`, "--body", "Algebra")
	req.NoError(err)
	received, err := a.store.ListReceived(ctx)
	req.NoError(err)
	ids := map[string]string{}
	for _, m := range received {
		ids[m.Subject] = m.ID.String()
	}

	// When each subject fragment is passed as a single shell argument
	out, err := execute(a, "search", `say "hi" now`, "--unread")

	// Then the quotes are matched literally
	req.NoError(err)
	req.Contains(out, ids[`Say "hi" now`])
	req.NotContains(out, ids[`Notes on a"b`])

	out, err = execute(a, "search", `a"b`)
	req.NoError(err)
	req.Contains(out, ids[`Notes on a"b`])
	req.NotContains(out, ids[`Say "hi" now`])
}
