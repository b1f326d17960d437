package repo

import (
	"errors"
	"fmt"
)

// ErrNoLogin: логин ещё ни разу не сохранялся.
var ErrNoLogin = errors.New("no stored login")

// UserContextStore абстракция для хранения контекста пользователя (последний логин).
type UserContextStore interface {
	SaveLogin(login string) error
	LoadLogin() (string, error)
}

// NewUserContextStore хранит последний логин в ls под ключом LastLoginKey.
func NewUserContextStore(ls LocalStorage) UserContextStore {
	return userContextStore{ls: ls}
}

type userContextStore struct {
	ls LocalStorage
}

func (s userContextStore) SaveLogin(login string) error {
	if login == "" {
		return errors.New("empty login")
	}
	return s.ls.SetItem(LastLoginKey, login)
}

func (s userContextStore) LoadLogin() (string, error) {
	login, err := s.ls.GetItem(LastLoginKey)
	if errors.Is(err, ErrNotFound) {
		return "", ErrNoLogin
	}
	if err != nil {
		return "", fmt.Errorf("load login: %w", err)
	}
	return login, nil
}
