package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"AdminDashboard/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// LocalStorageSQLite: key-value хранилище клиента поверх локальной БД SQLite.
type LocalStorageSQLite struct {
	db *sql.DB
}

var _ repo.LocalStorage = (*LocalStorageSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл <base>/client.sqlite.
// Вторым значением возвращается путь к БД.
func Open(base string) (*LocalStorageSQLite, string, error) {
	if base == "" {
		return nil, "", errors.New("empty storage dir")
	}
	if err := os.MkdirAll(base, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(base, "client.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &LocalStorageSQLite{db: db}, dbPath, nil
}

// Close закрывает соединение с БД.
func (s *LocalStorageSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц.
func (s *LocalStorageSQLite) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// GetItem returns the value of key or repo.ErrNotFound.
func (s *LocalStorageSQLite) GetItem(key string) (string, error) {
	if err := repo.ValidateKey(key); err != nil {
		return "", err
	}
	var v string
	err := s.db.QueryRow(`SELECT value FROM local_storage WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	if v == "" {
		return "", repo.ErrNotFound
	}
	return v, nil
}

// SetItem upserts key.
func (s *LocalStorageSQLite) SetItem(key, value string) error {
	if err := repo.ValidateKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT INTO local_storage(key, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

// RemoveItem deletes key; a missing key is not an error.
func (s *LocalStorageSQLite) RemoveItem(key string) error {
	if err := repo.ValidateKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM local_storage WHERE key = ?`, key)
	return err
}
