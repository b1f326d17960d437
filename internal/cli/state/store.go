// Package state holds the in-memory application state shared by the dashboard client.
package state

import (
	"errors"
	"sync"
)

// ErrNotInitialized is returned when the state store has not been created yet.
var ErrNotInitialized = errors.New("state store is not initialized")

// AuthState describes the authenticated session.
type AuthState struct {
	Login string
	Token string
}

// State is a snapshot of the application state. Auth is nil until a login happens.
type State struct {
	Auth *AuthState
}

// Store: потокобезопасный контейнер состояния клиента.
// Нулевой (*Store)(nil) допустим и означает «ещё не инициализирован».
type Store struct {
	mu    sync.RWMutex
	state State
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// SetAuth records the authenticated login and its token.
func (s *Store) SetAuth(login, token string) error {
	if s == nil {
		return ErrNotInitialized
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Auth = &AuthState{Login: login, Token: token}
	return nil
}

// ClearAuth drops the session.
func (s *Store) ClearAuth() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Auth = nil
}

// State returns a copy of the current state.
func (s *Store) State() State {
	if s == nil {
		return State{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := State{}
	if s.state.Auth != nil {
		a := *s.state.Auth
		out.Auth = &a
	}
	return out
}

// AuthToken returns the current token, or "" when nobody is logged in.
func (s *Store) AuthToken() (string, error) {
	if s == nil {
		return "", ErrNotInitialized
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Auth == nil {
		return "", nil
	}
	return s.state.Auth.Token, nil
}
