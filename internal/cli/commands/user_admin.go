package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"AdminDashboard/internal/cli/bootstrap"
)

// userPath строит путь /api/users/{id}[/suffix] с экранированием id.
func userPath(id, suffix string) string {
	p := "/api/users/" + url.PathEscape(id)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func notFound(status int, id string) error {
	if status == http.StatusNotFound {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

// user-add
type userAddCmd struct{}

func (userAddCmd) Name() string        { return "user-add" }
func (userAddCmd) Description() string { return "Create a user (admin)" }
func (userAddCmd) Usage() string       { return "user-add <login> <password> [role]" }

func (userAddCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	req := credentials{Login: args[0], Password: args[1]}
	if len(args) == 3 {
		req.Role = args[2]
	}
	c, err := client(app)
	if err != nil {
		return err
	}
	resp, err := c.Post(ctx, "/api/users", req)
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
	fmt.Fprintf(Out, "Created user %s (%s) id=%s\n", u.Login, u.Role, u.ID)
	return nil
}

// user-role
type userRoleCmd struct{}

func (userRoleCmd) Name() string        { return "user-role" }
func (userRoleCmd) Description() string { return "Change a user's role (admin)" }
func (userRoleCmd) Usage() string       { return "user-role <id> <admin|viewer>" }

func (userRoleCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	c, err := client(app)
	if err != nil {
		return err
	}
	resp, err := c.Patch(ctx, userPath(args[0], ""), map[string]string{"role": args[1]})
	if err != nil {
		return err
	}
	if err := notFound(resp.StatusCode, args[0]); err != nil {
		return err
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Role of %s set to %s\n", args[0], args[1])
	return nil
}

// user-passwd
type userPasswdCmd struct{}

func (userPasswdCmd) Name() string        { return "user-passwd" }
func (userPasswdCmd) Description() string { return "Reset a user's password (admin)" }
func (userPasswdCmd) Usage() string       { return "user-passwd <id> <password>" }

func (userPasswdCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	c, err := client(app)
	if err != nil {
		return err
	}
	resp, err := c.Put(ctx, userPath(args[0], "password"), map[string]string{"password": args[1]})
	if err != nil {
		return err
	}
	if err := notFound(resp.StatusCode, args[0]); err != nil {
		return err
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Password of %s updated\n", args[0])
	return nil
}

// user-del
type userDelCmd struct{}

func (userDelCmd) Name() string        { return "user-del" }
func (userDelCmd) Description() string { return "Delete a user (admin)" }
func (userDelCmd) Usage() string       { return "user-del <id>" }

func (userDelCmd) Run(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := client(app)
	if err != nil {
		return err
	}
	resp, err := c.Delete(ctx, userPath(args[0], ""))
	if err != nil {
		return err
	}
	if err := notFound(resp.StatusCode, args[0]); err != nil {
		return err
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted user %s\n", args[0])
	return nil
}

func init() {
	RegisterCmd(userAddCmd{})
	RegisterCmd(userRoleCmd{})
	RegisterCmd(userPasswdCmd{})
	RegisterCmd(userDelCmd{})
}
