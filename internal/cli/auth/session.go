package auth

import (
	"errors"
	"fmt"

	"AdminDashboard/internal/cli/repo"
	"AdminDashboard/internal/cli/state"
)

// Session записывает и удаляет сессию в обоих уровнях хранения.
// HTTP-клиент Session не использует: он только читает токен через Source.
type Session struct {
	State   *state.Store
	Storage repo.LocalStorage
}

// NewSession creates a session manager.
func NewSession(s *state.Store, st repo.LocalStorage) *Session {
	return &Session{State: s, Storage: st}
}

// Begin stores the login and token after a successful login or registration.
func (s *Session) Begin(login, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if s.State != nil {
		if err := s.State.SetAuth(login, token); err != nil {
			return err
		}
	}
	if s.Storage == nil {
		return nil
	}
	if err := repo.NewTokenStore(s.Storage).Save(token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	if login != "" {
		if err := repo.NewUserContextStore(s.Storage).SaveLogin(login); err != nil {
			return fmt.Errorf("saving login: %w", err)
		}
	}
	return nil
}

// End clears the session everywhere. The last login is kept for display.
func (s *Session) End() error {
	s.State.ClearAuth()
	if s.Storage == nil {
		return nil
	}
	return repo.NewTokenStore(s.Storage).Clear()
}

// CurrentLogin returns the logged-in user, preferring the state store.
func (s *Session) CurrentLogin() (string, error) {
	if st := s.State.State(); st.Auth != nil && st.Auth.Login != "" {
		return st.Auth.Login, nil
	}
	if s.Storage == nil {
		return "", repo.ErrNoLogin
	}
	return repo.NewUserContextStore(s.Storage).LoadLogin()
}
