package commands

import (
	"context"
	"fmt"

	"AdminDashboard/internal/cli/bootstrap"
)

type configCmd struct{}

func (configCmd) Name() string        { return "config" }
func (configCmd) Description() string { return "Show effective client settings" }
func (configCmd) Usage() string       { return "config" }

func (configCmd) Run(_ context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if app == nil || app.Config == nil {
		return errNoClient
	}
	cfg := app.Config
	login := "-"
	if app.Session != nil {
		if l, err := app.Session.CurrentLogin(); err == nil && l != "" {
			login = l
		}
	}
	fmt.Fprintf(Out, "api:       %s\n", cfg.ServerURL)
	fmt.Fprintf(Out, "storage:   %s (%s)\n", cfg.StorageBackend, cfg.StorageDir)
	fmt.Fprintf(Out, "locale:    %s\n", app.UI.Tag)
	fmt.Fprintf(Out, "theme:     %s\n", app.UI.Theme)
	fmt.Fprintf(Out, "forms:     %v\n", app.UI.FormPlugins)
	fmt.Fprintf(Out, "grid i18n: %s\n", app.UI.GridLanguageURL)
	fmt.Fprintf(Out, "timeout:   %s\n", cfg.Timeout())
	fmt.Fprintf(Out, "login:     %s\n", login)
	return nil
}

func init() { RegisterCmd(configCmd{}) }
