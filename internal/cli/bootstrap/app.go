// Package bootstrap assembles the dashboard client: state store, local storage,
// router, UI options and the API client are registered as plugins and installed
// in registration order when the application is mounted.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"AdminDashboard/internal/cli/api"
	"AdminDashboard/internal/cli/auth"
	"AdminDashboard/internal/cli/repo"
	"AdminDashboard/internal/cli/state"
	"AdminDashboard/internal/config"

	"go.uber.org/zap"
)

var (
	// ErrMounted is returned by Use and Mount once the app is mounted.
	ErrMounted = errors.New("app already mounted")
	// ErrNotMounted is returned by Run before Mount.
	ErrNotMounted = errors.New("app is not mounted")
	// ErrNoRouter is returned by Run when no router plugin was installed.
	ErrNoRouter = errors.New("no router installed")
)

// Plugin is installed into the App on mount.
type Plugin interface {
	Name() string
	Install(app *App) error
}

// RouteFunc dispatches CLI arguments and returns a process exit code.
type RouteFunc func(ctx context.Context, app *App, args []string) int

// App: собранный экземпляр клиента.
type App struct {
	Config *config.Config
	Logger *zap.SugaredLogger

	State   *state.Store
	Storage repo.LocalStorage
	Session *auth.Session
	UI      UIOptions
	API     *api.Client
	Router  RouteFunc

	plugins   []Plugin
	installed map[string]bool
	cleanups  []func() error
	mounted   bool
	useErr    error
}

// NewApp creates an unmounted app. A nil logger means no logging.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) *App {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &App{Config: cfg, Logger: logger, installed: map[string]bool{}}
}

// Use registers a plugin. Errors are reported by Mount.
func (a *App) Use(p Plugin) *App {
	if a.mounted {
		a.useErr = errors.Join(a.useErr, fmt.Errorf("use %s: %w", p.Name(), ErrMounted))
		return a
	}
	a.plugins = append(a.plugins, p)
	return a
}

// Installed reports whether a plugin with the given name is installed.
func (a *App) Installed(name string) bool { return a.installed[name] }

// OnClose registers a cleanup run by Close in reverse order.
func (a *App) OnClose(fn func() error) { a.cleanups = append(a.cleanups, fn) }

// Mount installs plugins in registration order. On failure the app is closed.
func (a *App) Mount(ctx context.Context) error {
	if a.mounted {
		return ErrMounted
	}
	if a.useErr != nil {
		return a.useErr
	}
	for _, p := range a.plugins {
		if err := ctx.Err(); err != nil {
			_ = a.Close()
			return err
		}
		if a.installed[p.Name()] {
			continue
		}
		if err := p.Install(a); err != nil {
			_ = a.Close()
			return fmt.Errorf("install %s: %w", p.Name(), err)
		}
		a.installed[p.Name()] = true
		a.Logger.Debugw("plugin installed", "plugin", p.Name())
	}
	a.mounted = true
	return nil
}

// Run hands args to the installed router.
func (a *App) Run(ctx context.Context, args []string) (int, error) {
	if !a.mounted {
		return 1, ErrNotMounted
	}
	if a.Router == nil {
		return 1, ErrNoRouter
	}
	return a.Router(ctx, a, args), nil
}

// Close runs cleanups in reverse order. Safe to call more than once.
func (a *App) Close() error {
	var errs []error
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		if err := a.cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.cleanups = nil
	return errors.Join(errs...)
}
