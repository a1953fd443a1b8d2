package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"uniportal/infrastructure/storage"
	"uniportal/internal"
	"uniportal/lifecycle"
	"uniportal/matcher"
	"uniportal/repositories"
	"uniportal/services"
	"uniportal/store"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/text/language"
)

// Exit codes returned to the shell or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "portal: %v\n", err)
	}
	os.Exit(code)
}

// app holds every component a command may need.
type app struct {
	config     internal.Config
	log        *slog.Logger
	kv         storage.IKV
	store      *store.MessageStore
	controller *lifecycle.Controller
	messages   services.IMessageService
	searches   services.ISavedSearchService
}

// run loads the configuration, opens the store and executes the command line.
// Deferred cleanups always run before the process exits.
func run(args []string) (int, error) {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return exitConfig, fmt.Errorf("loading .env: %w", err)
	}

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	locale, err := config.Locale()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := storage.Open(ctx, config.StorageOptions(), logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("storage opening failed: %w", err)
	}
	defer func() {
		logger.Debug("Closing store")
		_ = kv.Close()
	}()

	a := newApp(config, locale, logger, kv)
	defer a.controller.Close()

	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func newApp(config internal.Config, locale language.Tag, logger *slog.Logger, kv storage.IKV) *app {
	messageStore := store.NewMessageStore(repositories.NewMessageRepository(kv, logger), logger, config.OwnerName)
	m := matcher.NewMatcher(locale, matcher.NewBlugeRanker(logger), logger)
	controller := lifecycle.NewController(messageStore, logger, config.AutoSaveDelay,
		lifecycle.WithAutoSaveErrorHandler(func(sid lifecycle.SessionID, err error) {
			logger.Error("Auto-save failed", "session", sid, "error", err)
		}))
	return &app{
		config:     config,
		log:        logger,
		kv:         kv,
		store:      messageStore,
		controller: controller,
		messages:   services.NewMessageService(messageStore, m, logger),
		searches:   services.NewSavedSearchService(repositories.NewSavedSearchRepository(kv, logger), messageStore, m, logger),
	}
}
