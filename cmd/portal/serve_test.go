package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"uniportal/infrastructure/storage"
	"uniportal/internal"
	"uniportal/mocks"
	"uniportal/runtime/workers"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

func Test_Serve_Registers_Workers_On_Supervisor(t *testing.T) {
	tests := []struct {
		name       string
		badgerPath func(t *testing.T) string
		gcWorker   bool
	}{
		{"in memory store", func(t *testing.T) string { return "" }, false},
		{"on disk store", func(t *testing.T) string { return t.TempDir() }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			log := logs.GetLoggerFromLevel(slog.LevelInfo)

			// Given an app backed by a Badger store
			path := tt.badgerPath(t)
			kv, err := storage.OpenBadger(path, log)
			req.NoError(err)
			config := internal.Config{
				OwnerName:       "Me",
				AutoSaveDelay:   time.Second,
				BadgerFilepath:  path,
				Host:            "localhost",
				Port:            8080,
				GCInterval:      time.Minute,
				RestartInterval: time.Second,
				ShutdownTimeout: time.Second,
			}
			a := newApp(config, language.English, log, kv)
			t.Cleanup(func() {
				a.controller.Close()
				_ = kv.Close()
			})

			// Then the HTTP worker is always registered and the GC worker only on disk
			supervisor := mocks.NewMockISupervisor(ctrl)
			calls := []any{
				supervisor.EXPECT().Add(gomock.AssignableToTypeOf(&workers.HTTPServerWorker{})).Return(supervisor),
			}
			if tt.gcWorker {
				calls = append(calls, supervisor.EXPECT().Add(gomock.AssignableToTypeOf(&workers.ValueLogGCWorker{})).Return(supervisor))
			}
			calls = append(calls, supervisor.EXPECT().Run(gomock.Any()))
			gomock.InOrder(calls...)

			// When the portal is served
			err = a.serve(context.Background(), supervisor)

			req.NoError(err)
		})
	}
}
