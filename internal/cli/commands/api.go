package commands

import (
	"errors"
	"net/http"
	"time"

	"AdminDashboard/internal/cli/api"
	"AdminDashboard/internal/cli/bootstrap"
)

var (
	ErrNotLoggedIn = errors.New("not logged in: run login first")
	ErrForbidden   = errors.New("forbidden: admin role required")
	errNoClient    = errors.New("api client is not initialized")
)

// userView: пользователь в ответах API.
type userView struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func client(app *bootstrap.App) (*api.Client, error) {
	if app == nil || app.API == nil {
		return nil, errNoClient
	}
	return app.API, nil
}

// checkResponse переводит типовые статусы в ошибки для пользователя.
func checkResponse(resp *api.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrNotLoggedIn
	case http.StatusForbidden:
		return ErrForbidden
	}
	return resp.Err()
}
