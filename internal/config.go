package internal

import (
	"fmt"
	"time"

	"uniportal/infrastructure/storage"

	"golang.org/x/text/language"
)

type Config struct {
	StorageDriver   string        `env:"STORAGE_DRIVER,default=badger"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH"`
	SQLiteFilepath  string        `env:"SQLITE_FILEPATH"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	AutoSaveDelay   time.Duration `env:"AUTOSAVE_DELAY,default=2s"`
	SearchLocale    string        `env:"SEARCH_LOCALE,default=en"`
	OwnerName       string        `env:"PORTAL_OWNER_NAME,default=Me"`
	Host            string        `env:"HOST,default=localhost"`
	Port            int           `env:"PORT,default=8080"`
	GCInterval      time.Duration `env:"GC_INTERVAL,default=10m"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081"`
}

// Locale parses SEARCH_LOCALE, used to order sender names.
func (c Config) Locale() (language.Tag, error) {
	tag, err := language.Parse(c.SearchLocale)
	if err != nil {
		return language.Und, fmt.Errorf("SEARCH_LOCALE must be a BCP 47 tag, got %q: %w", c.SearchLocale, err)
	}
	return tag, nil
}

func (c Config) StorageOptions() storage.Options {
	return storage.Options{
		Driver:     storage.Driver(c.StorageDriver),
		BadgerPath: c.BadgerFilepath,
		SQLitePath: c.SQLiteFilepath,
	}
}

func (c Config) Validate() error {
	if c.AutoSaveDelay <= 0 {
		return fmt.Errorf("AUTOSAVE_DELAY must be positive, got %s", c.AutoSaveDelay)
	}
	if c.GCInterval <= 0 {
		return fmt.Errorf("GC_INTERVAL must be positive, got %s", c.GCInterval)
	}
	if c.RestartInterval <= 0 {
		return fmt.Errorf("RESTART_INTERVAL must be positive, got %s", c.RestartInterval)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DebugPort <= 0 || c.DebugPort > 65535 {
		return fmt.Errorf("DEBUG_PORT out of range: %d", c.DebugPort)
	}
	switch storage.Driver(c.StorageDriver) {
	case storage.DriverBadger, storage.DriverSQLite:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be badger or sqlite, got %q", c.StorageDriver)
	}
	_, err := c.Locale()
	return err
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
