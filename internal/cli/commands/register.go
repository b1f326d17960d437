package commands

import (
	"context"
	"errors"
	"net/http"

	"AdminDashboard/internal/cli/bootstrap"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and log in" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	c, err := client(app)
	if err != nil {
		return err
	}
	resp, err := c.Post(ctx, "/api/user/register", credentials{Login: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusConflict {
		return errors.New("login already taken")
	}
	if err := resp.Err(); err != nil {
		return err
	}
	return startSession(app, resp.Decode, args[0], "Registered successfully")
}

func init() { RegisterCmd(registerCmd{}) }
