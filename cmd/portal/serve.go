package main

import (
	"context"
	"fmt"
	"log/slog"

	"uniportal/contract"
	"uniportal/infrastructure/http/server"
	"uniportal/infrastructure/storage"
	"uniportal/repositories"
	"uniportal/runtime/workers"

	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/database"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the messaging API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), workers.NewSupervisor(a.log, a.config.RestartInterval))
		},
	}
}

// serve registers the portal workers on the supervisor and blocks until ctx
// is done.
func (a *app) serve(ctx context.Context, supervisor contract.ISupervisor) error {
	if !a.log.Enabled(ctx, slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewServer(a.controller, a.store, a.messages, a.searches, a.log).Router()
	supervisor.Add(workers.NewHTTPServerWorker(a.log, a.config.Address(), router, a.config.ShutdownTimeout))

	if badgerKV, ok := a.kv.(*storage.BadgerKV); ok {
		if a.config.BadgerFilepath != "" {
			supervisor.Add(workers.NewValueLogGCWorker(a.log, badgerKV.DB(), a.config.GCInterval))
		}
		if a.log.Enabled(ctx, slog.LevelDebug) {
			endpoint := "/inspect"
			a.log.Info("Debug Badger inspector available",
				"url", fmt.Sprintf("http://%s:%d%s", a.config.Host, a.config.DebugPort, endpoint))
			database.StartDebugServer(badgerKV.DB(), a.config.DebugPort, endpoint, inspectMapper)
		}
	}

	a.log.Info("Portal serving", "address", a.config.Address(), "driver", a.config.StorageDriver)
	supervisor.Run(ctx)
	a.log.Info("Portal stopped")
	return nil
}

// inspectMapper decodes portal records for the Badger debug inspector.
func inspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	described := repositories.Describe(key, val)
	row.Type = described.Kind
	row.Detail = described.Detail
	return row
}
