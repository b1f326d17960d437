package repo

import (
	"errors"
	"fmt"
	"regexp"
)

// TokenKey: ключ, под которым в локальном хранилище лежит auth-токен.
const TokenKey = "token"

// LastLoginKey: ключ последнего успешного логина.
const LastLoginKey = "last_login"

// ErrNotFound is returned by LocalStorage when the key has no value.
var ErrNotFound = errors.New("key not found")

// LocalStorage is a durable key-value store surviving client restarts.
type LocalStorage interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateKey checks that key is safe to use as a file name and a table key.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if !keyRe.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("invalid key: %q (allowed: letters, digits, . _ -)", key)
	}
	return nil
}
