package fs

import (
	"errors"
	"os"
	"path/filepath"

	"AdminDashboard/internal/cli/repo"
)

// LocalStorage: файловое key-value хранилище клиента: один файл на ключ.
type LocalStorage struct {
	dir string
}

var _ repo.LocalStorage = (*LocalStorage)(nil)

// New returns a storage rooted at <base>/local_storage. The directory is created lazily.
func New(base string) *LocalStorage {
	return &LocalStorage{dir: filepath.Join(base, "local_storage")}
}

// Dir returns the directory holding the key files.
func (s *LocalStorage) Dir() string { return s.dir }

// keyPath только вычисляет путь: чтение и удаление ничего не создают на диске.
func (s *LocalStorage) keyPath(key string) (string, error) {
	if err := repo.ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, key), nil
}

// GetItem читает значение ключа. Отсутствующий или пустой файл: repo.ErrNotFound.
func (s *LocalStorage) GetItem(key string) (string, error) {
	p, err := s.keyPath(key)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	b = trimTrailing(b)
	if len(b) == 0 {
		return "", repo.ErrNotFound
	}
	return string(b), nil
}

// SetItem atomically replaces the value of key.
func (s *LocalStorage) SetItem(key, value string) error {
	p, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// RemoveItem deletes key; removing a missing key is not an error.
func (s *LocalStorage) RemoveItem(key string) error {
	p, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// обрезаем завершающие переводы строки/пробелы
func trimTrailing(b []byte) []byte {
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return b
}
