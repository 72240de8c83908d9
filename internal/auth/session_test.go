package auth

import (
	"OrderKeeper/internal/model"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_RoundTrip(t *testing.T) {
	tok, err := NewToken(Session{UserID: "u1", Role: model.RoleAdmin}, "secret")
	assert.NoError(t, err)

	sess, err := ParseToken(tok, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, model.RoleAdmin, sess.Role)
}

func TestToken_WrongSecretRejected(t *testing.T) {
	tok, _ := NewToken(Session{UserID: "u1", Role: model.RoleUser}, "secret-A")
	sess, err := ParseToken(tok, "secret-B")
	assert.Nil(t, sess)
	assert.Error(t, err)
}

func TestToken_GarbageRejected(t *testing.T) {
	sess, err := ParseToken("not.a.token", "secret")
	assert.Nil(t, sess)
	assert.Error(t, err)
}

// стаб TokenStore для проверки CheckSession
type stubStore struct {
	token string
	err   error
}

func (s stubStore) Load() (string, error) { return s.token, s.err }

func TestCheckSession(t *testing.T) {
	const secret = "secret"
	adminTok, _ := NewToken(Session{UserID: "a1", Role: model.RoleAdmin}, secret)
	userTok, _ := NewToken(Session{UserID: "u1", Role: model.RoleUser}, secret)

	t.Run("no stored token -> unauthenticated", func(t *testing.T) {
		res := CheckSession(stubStore{err: errors.New("no file")}, secret, model.RoleUser)
		assert.Equal(t, StateUnauthenticated, res.State)
		assert.Nil(t, res.User)
	})

	t.Run("invalid token -> unauthenticated", func(t *testing.T) {
		res := CheckSession(stubStore{token: "garbage"}, secret, model.RoleUser)
		assert.Equal(t, StateUnauthenticated, res.State)
	})

	t.Run("user role where admin required -> unauthorized with user", func(t *testing.T) {
		res := CheckSession(stubStore{token: userTok}, secret, model.RoleAdmin)
		assert.Equal(t, StateUnauthorized, res.State)
		if assert.NotNil(t, res.User) {
			assert.Equal(t, "u1", res.User.UserID)
		}
	})

	t.Run("admin satisfies user requirement", func(t *testing.T) {
		res := CheckSession(stubStore{token: adminTok}, secret, model.RoleUser)
		assert.Equal(t, StateAuthenticated, res.State)
		assert.Equal(t, "a1", res.User.UserID)
	})

	t.Run("authenticated", func(t *testing.T) {
		res := CheckSession(stubStore{token: userTok}, secret, model.RoleUser)
		assert.Equal(t, StateAuthenticated, res.State)
		assert.Equal(t, model.RoleUser, res.User.Role)
	})
}

func TestFileTokenStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tokens")
	store := FileTokenStore{Dir: dir}

	t.Run("load before save fails", func(t *testing.T) {
		_, err := store.Load()
		assert.Error(t, err)
	})

	t.Run("save then load", func(t *testing.T) {
		assert.NoError(t, store.Save("tok-123"))
		tok, err := store.Load()
		assert.NoError(t, err)
		assert.Equal(t, "tok-123", tok)
	})

	t.Run("trailing whitespace trimmed", func(t *testing.T) {
		assert.NoError(t, store.Save("tok-456\n"))
		tok, err := store.Load()
		assert.NoError(t, err)
		assert.Equal(t, "tok-456", tok)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		assert.Error(t, store.Save(""))
	})
}
