package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"AdminDashboard/internal/cli/bootstrap"

	"github.com/dustin/go-humanize"
)

type usersCmd struct{}

func (usersCmd) Name() string        { return "users" }
func (usersCmd) Description() string { return "List users (admin)" }
func (usersCmd) Usage() string       { return "users" }

func (usersCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := client(app)
	if err != nil {
		return err
	}
	resp, err := c.Get(ctx, "/api/users")
	if err != nil {
		return err
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	var users []userView
	if err := resp.Decode(&users); err != nil {
		return err
	}
	return renderUsers(Out, app.UI, users)
}

// renderUsers печатает таблицу с подписями колонок в локали UI.
func renderUsers(w io.Writer, ui bootstrap.UIOptions, users []userView) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, ui.Label("empty"))
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ui.Label("id"), ui.Label("login"), ui.Label("role"), ui.Label("created_at"))
	for _, u := range users {
		created := "-"
		if !u.CreatedAt.IsZero() {
			created = humanize.Time(u.CreatedAt)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Login, u.Role, created)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d\n", ui.Label("total"), len(users))
	return err
}

func init() { RegisterCmd(usersCmd{}) }
