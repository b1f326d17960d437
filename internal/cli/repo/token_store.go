package repo

import "errors"

// TokenStore описывает абстракцию хранилища auth-токена на клиенте.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// NewTokenStore хранит токен в ls под ключом TokenKey.
func NewTokenStore(ls LocalStorage) TokenStore {
	return tokenStore{ls: ls}
}

type tokenStore struct {
	ls LocalStorage
}

func (s tokenStore) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return s.ls.SetItem(TokenKey, token)
}

// Load возвращает ErrNotFound, если токена нет.
func (s tokenStore) Load() (string, error) {
	return s.ls.GetItem(TokenKey)
}

func (s tokenStore) Clear() error {
	return s.ls.RemoveItem(TokenKey)
}
