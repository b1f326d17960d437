package bootstrap

import (
	"fmt"

	"AdminDashboard/internal/cli/api"
	"AdminDashboard/internal/cli/auth"
	"AdminDashboard/internal/cli/state"
)

// Plugin names, in the order the client installs them.
const (
	PluginState   = "state"
	PluginStorage = "storage"
	PluginRouter  = "router"
	PluginUI      = "ui"
	PluginAPI     = "api"
)

type pluginFunc struct {
	name    string
	install func(*App) error
}

func (p pluginFunc) Name() string           { return p.name }
func (p pluginFunc) Install(app *App) error { return p.install(app) }

// NewPlugin wraps a function as a Plugin.
func NewPlugin(name string, install func(*App) error) Plugin {
	return pluginFunc{name: name, install: install}
}

// StatePlugin creates the in-memory state store.
func StatePlugin() Plugin {
	return NewPlugin(PluginState, func(app *App) error {
		app.State = state.New()
		return nil
	})
}

// StoragePlugin opens the persisted local storage selected by the config.
func StoragePlugin() Plugin {
	return NewPlugin(PluginStorage, func(app *App) error {
		st, done, err := OpenStorage(app.Config)
		if err != nil {
			return err
		}
		app.Storage = st
		app.OnClose(done)
		app.Logger.Debugw("local storage opened", "backend", app.Config.StorageBackend, "dir", app.Config.StorageDir)
		return nil
	})
}

// RouterPlugin installs the command dispatcher.
func RouterPlugin(route RouteFunc) Plugin {
	return NewPlugin(PluginRouter, func(app *App) error {
		if route == nil {
			return ErrNoRouter
		}
		app.Router = route
		return nil
	})
}

// UIPlugin fills presentation options (theme, form locale, grid language).
func UIPlugin() Plugin {
	return NewPlugin(PluginUI, func(app *App) error {
		app.UI = NewUIOptions(app.Config.Theme, app.Config.Locale, app.Config.GridLanguageURL)
		return nil
	})
}

// APIPlugin builds the authenticated API client. State and storage must be installed first.
func APIPlugin() Plugin {
	return NewPlugin(PluginAPI, func(app *App) error {
		for _, dep := range []string{PluginState, PluginStorage} {
			if !app.Installed(dep) {
				return fmt.Errorf("%s plugin must be installed before %s", dep, PluginAPI)
			}
		}
		app.Session = auth.NewSession(app.State, app.Storage)
		opts := []api.Option{
			api.WithTimeout(app.Config.Timeout()),
			api.WithLogger(app.Logger),
		}
		if app.UI.Locale != "" {
			opts = append(opts, api.WithHeader("Accept-Language", app.UI.Tag.String()))
		}
		app.API = api.New(app.Config.ServerURL, auth.Default(app.State, app.Storage), opts...)
		return nil
	})
}

// Default returns the client plugin chain in its fixed order.
func Default(route RouteFunc) []Plugin {
	return []Plugin{StatePlugin(), StoragePlugin(), RouterPlugin(route), UIPlugin(), APIPlugin()}
}
