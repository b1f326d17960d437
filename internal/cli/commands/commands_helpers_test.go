package commands

import (
	"bytes"
	"context"
	"testing"

	"AdminDashboard/internal/cli/bootstrap"
	"AdminDashboard/internal/config"

	"github.com/stretchr/testify/require"
)

// newTestApp собирает клиент со всеми плагинами; хранилище во временном каталоге.
func newTestApp(t *testing.T, serverURL string) *bootstrap.App {
	t.Helper()
	cfg := &config.Config{
		ServerURL:       serverURL,
		StorageDir:      t.TempDir(),
		StorageBackend:  "fs",
		Locale:          "pt_BR",
		Theme:           "bootstrap",
		GridLanguageURL: "https://cdn.example/pt-BR.json",
	}
	app := bootstrap.NewApp(cfg, nil)
	for _, p := range bootstrap.Default(Dispatch) {
		app.Use(p)
	}
	require.NoError(t, app.Mount(context.Background()))
	t.Cleanup(func() { _ = app.Close() })
	return app
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
