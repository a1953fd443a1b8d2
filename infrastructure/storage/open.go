package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"uniportal/errors"
)

type Driver string

const (
	DriverBadger Driver = "badger"
	DriverSQLite Driver = "sqlite"
)

type Options struct {
	Driver     Driver
	BadgerPath string
	SQLitePath string
}

// Open returns the store selected by the driver option.
func Open(ctx context.Context, options Options, log *slog.Logger) (IKV, error) {
	switch Driver(strings.ToLower(string(options.Driver))) {
	case DriverBadger, "":
		log.Info("Opening Badger store", "path", options.BadgerPath, "in_memory", options.BadgerPath == "")
		return OpenBadger(options.BadgerPath, log)
	case DriverSQLite:
		log.Info("Opening SQLite store", "path", options.SQLitePath, "in_memory", options.SQLitePath == "")
		return OpenSQLite(ctx, options.SQLitePath, log)
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownDriver, options.Driver)
	}
}
