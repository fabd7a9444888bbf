package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/service"
	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/internal/workers"
	"github.com/MKhiriev/go-task-sync/models"
)

// Dependencies are the collaborators of an [App]. Sync and Auth may be nil
// for commands that never reach the task service.
type Dependencies struct {
	Tasks  store.LocalTaskRepository
	Sync   service.ClientSyncService
	Auth   service.ClientAuthService
	Config *config.ClientConfig
	Build  models.AppBuildInfo
	Out    io.Writer
	Logger *logger.Logger
}

// App runs one taskctl command.
type App struct {
	command string
	args    []string

	tasks  store.LocalTaskRepository
	sync   service.ClientSyncService
	auth   service.ClientAuthService
	cfg    *config.ClientConfig
	build  models.AppBuildInfo
	out    io.Writer
	now    func() time.Time
	logger *logger.Logger
}

func NewApp(command string, deps Dependencies) (*App, error) {
	cmd, ok := commands[command]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	if deps.Config == nil {
		return nil, fmt.Errorf("%w: no config", ErrUsage)
	}
	if cmd.local && deps.Tasks == nil {
		return nil, fmt.Errorf("%w: %s needs the local store", ErrUsage, command)
	}
	if cmd.remote && (deps.Sync == nil || deps.Auth == nil) {
		return nil, fmt.Errorf("%w: %s needs the task service", ErrUsage, command)
	}

	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		command: command,
		args:    deps.Config.Args,
		tasks:   deps.Tasks,
		sync:    deps.Sync,
		auth:    deps.Auth,
		cfg:     deps.Config,
		build:   deps.Build,
		out:     out,
		now:     time.Now,
		logger:  log,
	}, nil
}

// Run executes the command and blocks until it is done or the process
// receives an interrupt.
func (a *App) Run() error {
	return a.RunContext(context.Background())
}

// RunContext is Run bounded by ctx as well.
func (a *App) RunContext(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	log := a.logger.With().Str("command", a.command).Logger()
	ctx = log.WithContext(ctx)

	log.Debug().Strs("args", a.args).Msg("running command")

	if err := commands[a.command].run(a, ctx); err != nil {
		log.Err(err).Msg("command failed")
		return err
	}
	return nil
}

func (a *App) account() models.Account {
	return models.Account{
		Name:     a.cfg.Sync.Account,
		Login:    a.cfg.Sync.Login,
		Password: a.cfg.Sync.Password,
	}
}

// NeedsRemote reports whether command talks to the task service.
func NeedsRemote(command string) bool {
	return commands[command].remote
}

// NeedsStore reports whether command opens the local store.
func NeedsStore(command string) bool {
	cmd := commands[command]
	return cmd.local || cmd.remote
}

func (a *App) newSyncWorker() *workers.SyncWorker {
	return workers.NewSyncWorker(a.sync, a.cfg, a.logger)
}
