package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const discardRatio = 0.5

// ValueLogGCWorker reclaims value log space of an on-disk Badger store.
// Drafts are rewritten on every auto-save, so the value log grows quickly.
type ValueLogGCWorker struct {
	log      *slog.Logger
	db       *badger.DB
	interval time.Duration
}

func NewValueLogGCWorker(log *slog.Logger, db *badger.DB, interval time.Duration) *ValueLogGCWorker {
	return &ValueLogGCWorker{log: log, db: db, interval: interval}
}

func (w *ValueLogGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.collect(); err != nil {
				return err
			}
		}
	}
}

// collect runs GC until badger reports nothing left to rewrite.
func (w *ValueLogGCWorker) collect() error {
	rewrites := 0
	for {
		err := w.db.RunValueLogGC(discardRatio)
		switch {
		case err == nil:
			rewrites++
		case stderrors.Is(err, badger.ErrNoRewrite), stderrors.Is(err, badger.ErrRejected):
			w.log.Debug("Value log GC done", "rewrites", rewrites)
			return nil
		default:
			return err
		}
	}
}
