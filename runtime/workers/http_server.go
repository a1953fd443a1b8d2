package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServerWorker serves the JSON API until the context is cancelled, then
// shuts the server down gracefully.
type HTTPServerWorker struct {
	log             *slog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewHTTPServerWorker(log *slog.Logger, address string, handler http.Handler, shutdownTimeout time.Duration) *HTTPServerWorker {
	return &HTTPServerWorker{
		log: log,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		w.log.Info("HTTP server listening", "address", w.server.Addr)
		errCh <- w.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()
		w.log.Info("Shutting down HTTP server")
		if err := w.server.Shutdown(shutdownCtx); err != nil {
			w.log.Error("HTTP server shutdown failed", "error", err)
		}
		return ctx.Err()
	}
}
