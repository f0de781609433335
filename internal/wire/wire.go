// Package wire provides dependency injection for the empdir application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log/slog"
	"os"
	"sync"

	"github.com/example/empdir/internal/adapters/sqlite"
	"github.com/example/empdir/internal/app"
	"github.com/example/empdir/internal/db"
	"github.com/example/empdir/internal/ports/primary"
	"github.com/example/empdir/internal/ports/secondary"
)

var (
	directory primary.DirectoryService
	logger    *slog.Logger
	once      sync.Once
)

// Directory returns the singleton DirectoryService instance.
func Directory() primary.DirectoryService {
	once.Do(initServices)
	return directory
}

// Logger returns the process-wide logger.
func Logger() *slog.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// A database failure degrades to an in-memory directory rather than
	// aborting: losing the session over a storage hiccup is worse than a
	// missed persist.
	var repo secondary.StateRepository
	database, err := db.GetDB()
	if err != nil {
		logger.Warn("could not open database, directory will not persist", "error", err)
	} else {
		repo = sqlite.NewStateRepository(database)
	}

	store := app.NewDirectory(repo, logger)
	store.Subscribe(func() {
		logger.Debug("directory state changed")
	})
	directory = store
}
