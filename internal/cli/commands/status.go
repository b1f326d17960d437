package commands

import (
	"context"
	"fmt"

	"AdminDashboard/internal/cli/bootstrap"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the current user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := client(app)
	if err != nil {
		return err
	}
	resp, err := c.Get(ctx, "/api/user/me")
	if err != nil {
		return err
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	var u userView
	if err := resp.Decode(&u); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Status: logged in as %s (%s)\n", u.Login, u.Role)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
