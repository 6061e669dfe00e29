// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/filekv"
	"github.com/taskdeck/taskdeck/internal/infra/logging"
	"github.com/taskdeck/taskdeck/internal/infra/mockstore"
	"github.com/taskdeck/taskdeck/internal/infra/sqlitekv"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Paths holds the resolved filesystem locations used by the application.
type Paths struct {
	DataDir     string // Data directory (logs, session storage)
	SessionPath string // Session storage file
}

// Container provides dependency injection for the application. Services
// are constructed once at process start and torn down via Close; there are
// no package-level singletons.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store    domain.TaskStore
	Sessions *auth.Manager
	Clock    domain.Clock

	// Services
	Notifications *notify.Center
	Logger        *slog.Logger

	// Configuration
	Config *domain.Config
	Paths  Paths

	closers []io.Closer
}

// defaultDataDir returns the data directory, honoring XDG conventions.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskdeck"), nil
}

// New creates a new Container from the user's configuration.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.NewFileLogger(dataDir, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return nil, err
	}

	c := &Container{
		Clock:   domain.RealClock{},
		Logger:  logger,
		Config:  cfg,
		Paths:   Paths{DataDir: dataDir},
		closers: []io.Closer{logCloser},
	}

	if err := c.bindSessionStorage(cfg); err != nil {
		_ = c.Close()
		return nil, err
	}

	store, err := newTaskStore(cfg, c.Clock)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Store = store

	c.Notifications = notify.NewCenter()

	return c, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(store domain.TaskStore, sessions *auth.Manager, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Store:         store,
		Sessions:      sessions,
		Clock:         clock,
		Notifications: notify.NewCenter(),
		Logger:        logger,
		Config:        domain.NewDefaultConfig(),
	}
}

// bindSessionStorage selects the durable storage backend for the session.
func (c *Container) bindSessionStorage(cfg *domain.Config) error {
	path := cfg.Session.Path
	var storage domain.KeyValueStore

	switch cfg.Session.Storage {
	case domain.SessionStorageSQLite:
		if path == "" {
			path = filepath.Join(c.Paths.DataDir, "session.db")
		}
		store, err := sqlitekv.New(path)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, store)
		storage = store
	default:
		if path == "" {
			path = filepath.Join(c.Paths.DataDir, "session.json")
		}
		storage = filekv.New(path)
	}

	c.Paths.SessionPath = path
	logger := c.Logger
	c.Sessions = auth.NewManager(storage, auth.WithLogoutHook(func() {
		logger.Info("session cleared")
	}))
	return nil
}

// newTaskStore builds the mock backend from config.
func newTaskStore(cfg *domain.Config, clock domain.Clock) (domain.TaskStore, error) {
	opts := []mockstore.Option{
		mockstore.WithLatency(
			time.Duration(cfg.Store.LatencyMinMS)*time.Millisecond,
			time.Duration(cfg.Store.LatencyMaxMS)*time.Millisecond,
		),
	}
	if cfg.Store.Seed != "" {
		opts = append(opts, mockstore.WithSeedFile(cfg.Store.Seed))
	}
	return mockstore.New(clock, opts...)
}

// Close tears down container-owned resources.
func (c *Container) Close() error {
	if c.Notifications != nil {
		c.Notifications.Close()
	}
	var lastErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// UseCase factory methods

// LoadBoardUseCase returns a new LoadBoard use case.
func (c *Container) LoadBoardUseCase() *usecase.LoadBoard {
	return usecase.NewLoadBoard(c.Store)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store, c.Clock)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Store)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Store)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.Sessions)
}

// LogoutUseCase returns a new Logout use case.
func (c *Container) LogoutUseCase() *usecase.Logout {
	return usecase.NewLogout(c.Sessions)
}

// RestoreSessionUseCase returns a new RestoreSession use case.
func (c *Container) RestoreSessionUseCase() *usecase.RestoreSession {
	return usecase.NewRestoreSession(c.Sessions)
}
