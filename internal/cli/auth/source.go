// Package auth resolves the credential attached to outgoing API requests.
//
// Sources are consulted in priority order: the in-memory state store first, then the
// persisted local storage. A source that fails is treated as having no token.
package auth

import (
	"AdminDashboard/internal/cli/repo"
	"AdminDashboard/internal/cli/state"
)

// Source отдаёт текущий токен, если он есть. Реализации не должны паниковать
// и не должны менять своё хранилище.
type Source interface {
	Token() (string, bool)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (string, bool)

// Token implements Source.
func (f SourceFunc) Token() (string, bool) {
	if f == nil {
		return "", false
	}
	return f()
}

// TokenReader is the part of the state store a StateSource needs.
type TokenReader interface {
	AuthToken() (string, error)
}

// StateSource reads the token from the shared state container.
type StateSource struct {
	Store TokenReader
}

// NewStateSource wraps the state store.
func NewStateSource(s *state.Store) StateSource {
	return StateSource{Store: s}
}

// Token implements Source. An uninitialised or failing store yields no token.
func (s StateSource) Token() (tok string, ok bool) {
	defer func() {
		if recover() != nil {
			tok, ok = "", false
		}
	}()
	if s.Store == nil {
		return "", false
	}
	t, err := s.Store.AuthToken()
	if err != nil || t == "" {
		return "", false
	}
	return t, true
}

// StorageSource reads the token from persisted local storage.
type StorageSource struct {
	Storage repo.LocalStorage
	Key     string
}

// NewStorageSource uses repo.TokenKey.
func NewStorageSource(st repo.LocalStorage) StorageSource {
	return StorageSource{Storage: st, Key: repo.TokenKey}
}

// Token implements Source.
func (s StorageSource) Token() (tok string, ok bool) {
	defer func() {
		if recover() != nil {
			tok, ok = "", false
		}
	}()
	if s.Storage == nil {
		return "", false
	}
	key := s.Key
	if key == "" {
		key = repo.TokenKey
	}
	t, err := s.Storage.GetItem(key)
	if err != nil || t == "" {
		return "", false
	}
	return t, true
}

// chain: первый непустой токен побеждает.
type chain []Source

// Chain composes sources in priority order.
func Chain(sources ...Source) Source {
	out := make(chain, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (c chain) Token() (string, bool) {
	for _, s := range c {
		if t, ok := s.Token(); ok && t != "" {
			return t, true
		}
	}
	return "", false
}

// Default builds the dashboard lookup order: state store, then local storage.
func Default(s *state.Store, st repo.LocalStorage) Source {
	return Chain(NewStateSource(s), NewStorageSource(st))
}
