package bootstrap

import (
	"fmt"

	"AdminDashboard/internal/cli/repo"
	fsrepo "AdminDashboard/internal/cli/repo/fs"
	reposqlite "AdminDashboard/internal/cli/repo/sqlite"
	"AdminDashboard/internal/config"
)

// OpenStorage открывает локальное хранилище клиента по конфигу
// и возвращает (storage, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenStorage(cfg *config.Config) (repo.LocalStorage, func() error, error) {
	if cfg == nil || cfg.StorageDir == "" {
		return nil, nil, fmt.Errorf("open storage: empty storage dir")
	}
	switch cfg.StorageBackend {
	case "sqlite":
		r, _, err := reposqlite.Open(cfg.StorageDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open client db: %w", err)
		}
		if err := r.Migrate(); err != nil {
			_ = r.Close()
			return nil, nil, fmt.Errorf("migrate client db: %w", err)
		}
		return r, r.Close, nil
	default:
		return fsrepo.New(cfg.StorageDir), func() error { return nil }, nil
	}
}
