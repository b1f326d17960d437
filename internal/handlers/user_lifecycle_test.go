package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"AdminDashboard/internal/handlers"
	"AdminDashboard/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	return newTestRouter(t, repo.NewUserRepository(db))
}

func call(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return do(router, req)
}

func tokenFrom(t *testing.T, rr *httptest.ResponseRecorder) handlers.TokenResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var tr handlers.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tr))
	return tr
}

func TestUsers_DemoteAndDeleteRevokeAccess(t *testing.T) {
	router := newSQLiteRouter(t)

	root := tokenFrom(t, call(t, router, http.MethodPost, "/api/user/register", "", `{"login":"root","password":"pw"}`))
	require.Equal(t, "admin", root.User.Role)

	rr := call(t, router, http.MethodPost, "/api/users", root.Token, `{"login":"bob","password":"pw","role":"admin"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	bob := tokenFrom(t, call(t, router, http.MethodPost, "/api/user/login", "", `{"login":"bob","password":"pw"}`))
	assert.Equal(t, http.StatusOK, call(t, router, http.MethodGet, "/api/users", bob.Token, "").Code)

	// понижение: старый токен bob всё ещё подписан с ролью admin
	rr = call(t, router, http.MethodPatch, "/api/users/"+bob.User.ID, root.Token, `{"role":"viewer"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, http.StatusForbidden, call(t, router, http.MethodGet, "/api/users", bob.Token, "").Code)
	assert.Equal(t, http.StatusForbidden, call(t, router, http.MethodDelete, "/api/users/"+root.User.ID, bob.Token, "").Code)

	rr = call(t, router, http.MethodGet, "/api/user/me", bob.Token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var me handlers.UserDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.Equal(t, "viewer", me.Role)

	// удаление: токен больше не аутентифицирует
	require.Equal(t, http.StatusNoContent, call(t, router, http.MethodDelete, "/api/users/"+bob.User.ID, root.Token, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(t, router, http.MethodGet, "/api/users", bob.Token, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(t, router, http.MethodGet, "/api/user/me", bob.Token, "").Code)

	// открытые маршруты работают и с устаревшим токеном
	carol := tokenFrom(t, call(t, router, http.MethodPost, "/api/user/register", bob.Token, `{"login":"carol","password":"pw"}`))
	assert.Equal(t, "viewer", carol.User.Role)
	assert.Equal(t, http.StatusOK, call(t, router, http.MethodGet, "/api/users", root.Token, "").Code)
}
