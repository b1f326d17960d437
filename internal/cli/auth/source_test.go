package auth

import (
	"errors"
	"testing"

	"AdminDashboard/internal/cli/repo"
	"AdminDashboard/internal/cli/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage: простое in-memory хранилище для тестов.
type memStorage struct {
	items map[string]string
	err   error
}

func newMemStorage(kv ...string) *memStorage {
	m := &memStorage{items: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		m.items[kv[i]] = kv[i+1]
	}
	return m
}

func (m *memStorage) GetItem(key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.items[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (m *memStorage) SetItem(key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = value
	return nil
}

func (m *memStorage) RemoveItem(key string) error {
	delete(m.items, key)
	return nil
}

type panickingReader struct{}

func (panickingReader) AuthToken() (string, error) { panic("state not ready") }

type failingReader struct{}

func (failingReader) AuthToken() (string, error) { return "", errors.New("boom") }

func TestStateSource(t *testing.T) {
	s := state.New()
	_, ok := NewStateSource(s).Token()
	assert.False(t, ok, "empty store has no token")

	require.NoError(t, s.SetAuth("alice", "tok-state"))
	tok, ok := NewStateSource(s).Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-state", tok)

	_, ok = NewStateSource(nil).Token()
	assert.False(t, ok, "nil store is not initialised")

	_, ok = StateSource{}.Token()
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		_, ok = StateSource{Store: panickingReader{}}.Token()
	})
	assert.False(t, ok)

	_, ok = StateSource{Store: failingReader{}}.Token()
	assert.False(t, ok)
}

func TestStorageSource(t *testing.T) {
	tok, ok := NewStorageSource(newMemStorage("token", "abc123")).Token()
	assert.True(t, ok)
	assert.Equal(t, "abc123", tok)

	_, ok = NewStorageSource(newMemStorage()).Token()
	assert.False(t, ok)

	_, ok = NewStorageSource(nil).Token()
	assert.False(t, ok)

	broken := newMemStorage("token", "x")
	broken.err = errors.New("disk")
	_, ok = NewStorageSource(broken).Token()
	assert.False(t, ok)

	// произвольный ключ
	tok, ok = StorageSource{Storage: newMemStorage("jwt", "j"), Key: "jwt"}.Token()
	assert.True(t, ok)
	assert.Equal(t, "j", tok)
}

func TestChain_PrecedenceAndFallback(t *testing.T) {
	s := state.New()
	st := newMemStorage("token", "from-storage")
	src := Default(s, st)

	tok, ok := src.Token()
	require.True(t, ok)
	assert.Equal(t, "from-storage", tok, "falls back to storage")

	require.NoError(t, s.SetAuth("alice", "from-state"))
	tok, _ = src.Token()
	assert.Equal(t, "from-state", tok, "state wins")

	s.ClearAuth()
	delete(st.items, "token")
	_, ok = src.Token()
	assert.False(t, ok)

	// паника в первом источнике не мешает второму
	src = Chain(StateSource{Store: panickingReader{}}, NewStorageSource(newMemStorage("token", "abc123")))
	tok, ok = src.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc123", tok)
}

func TestChain_SkipsNilAndEmpty(t *testing.T) {
	empty := SourceFunc(func() (string, bool) { return "", true })
	var nilFunc SourceFunc
	src := Chain(nil, empty, nilFunc, SourceFunc(func() (string, bool) { return "z", true }))
	tok, ok := src.Token()
	assert.True(t, ok)
	assert.Equal(t, "z", tok)
}

func TestSession_BeginEnd(t *testing.T) {
	s := state.New()
	st := newMemStorage()
	sess := NewSession(s, st)

	assert.Error(t, sess.Begin("alice", ""))
	require.NoError(t, sess.Begin("alice", "tok"))

	tok, _ := s.AuthToken()
	assert.Equal(t, "tok", tok)
	assert.Equal(t, "tok", st.items[repo.TokenKey])
	login, err := sess.CurrentLogin()
	require.NoError(t, err)
	assert.Equal(t, "alice", login)

	require.NoError(t, sess.End())
	tok, _ = s.AuthToken()
	assert.Empty(t, tok)
	_, has := st.items[repo.TokenKey]
	assert.False(t, has)

	// после выхода логин читается из хранилища
	login, err = sess.CurrentLogin()
	require.NoError(t, err)
	assert.Equal(t, "alice", login)
}

func TestSession_StorageError(t *testing.T) {
	st := newMemStorage()
	st.err = errors.New("read-only")
	sess := NewSession(nil, st)
	assert.Error(t, sess.Begin("a", "t"))
	_, err := sess.CurrentLogin()
	assert.Error(t, err)
}

func TestSession_NoLoginYet(t *testing.T) {
	_, err := NewSession(nil, newMemStorage()).CurrentLogin()
	assert.ErrorIs(t, err, repo.ErrNoLogin)
	_, err = NewSession(state.New(), nil).CurrentLogin()
	assert.ErrorIs(t, err, repo.ErrNoLogin)
}
