package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"AdminDashboard/internal/cli/bootstrap"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the bearer token" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	c, err := client(app)
	if err != nil {
		return err
	}
	resp, err := c.Post(ctx, "/api/user/login", credentials{Login: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid login or password")
	}
	if err := resp.Err(); err != nil {
		return err
	}
	return startSession(app, resp.Decode, args[0], "Logged in successfully")
}

// startSession сохраняет выданный сервером токен в state и локальное хранилище.
func startSession(app *bootstrap.App, decode func(any) error, login, msg string) error {
	var tr tokenResponse
	if err := decode(&tr); err != nil {
		return err
	}
	if tr.Token == "" {
		return errors.New("server returned no token")
	}
	if tr.User.Login != "" {
		login = tr.User.Login
	}
	if err := app.Session.Begin(login, tr.Token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if tr.User.Role != "" {
		fmt.Fprintf(Out, "%s (%s, %s)\n", msg, login, tr.User.Role)
	} else {
		fmt.Fprintln(Out, msg)
	}
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
