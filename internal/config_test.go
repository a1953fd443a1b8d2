package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func Test_Config_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{}, &config)

	req.NoError(err)
	req.Equal("badger", config.StorageDriver)
	req.Equal(2*time.Second, config.AutoSaveDelay)
	req.Equal("Me", config.OwnerName)
	req.Equal("localhost:8080", config.Address())
	req.NoError(config.Validate())
	locale, err := config.Locale()
	req.NoError(err)
	req.Equal(language.English, locale)
}

func Test_Config_From_Environment(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{
		"STORAGE_DRIVER":  "sqlite",
		"SQLITE_FILEPATH": "/tmp/portal.db",
		"AUTOSAVE_DELAY":  "500ms",
		"SEARCH_LOCALE":   "fr-FR",
		"PORT":            "9090",
	}, &config)

	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal(500*time.Millisecond, config.AutoSaveDelay)
	req.Equal("/tmp/portal.db", config.StorageOptions().SQLitePath)
	req.Equal("localhost:9090", config.Address())
}

func Test_Config_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.StorageDriver = "postgres" }},
		{"zero delay", func(c *Config) { c.AutoSaveDelay = 0 }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"bad debug port", func(c *Config) { c.DebugPort = 0 }},
		{"bad locale", func(c *Config) { c.SearchLocale = "not a locale!" }},
		{"zero gc interval", func(c *Config) { c.GCInterval = 0 }},
		{"negative restart interval", func(c *Config) { c.RestartInterval = -time.Second }},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }},
	}
	valid := func() Config {
		return Config{
			StorageDriver:   "badger",
			AutoSaveDelay:   time.Second,
			Port:            8080,
			DebugPort:       8081,
			SearchLocale:    "en",
			GCInterval:      time.Minute,
			RestartInterval: time.Second,
			ShutdownTimeout: time.Second,
		}
	}
	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.modify(&config)
			require.Error(t, config.Validate())
		})
	}
}
