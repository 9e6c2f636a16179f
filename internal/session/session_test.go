package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-client/internal/remote"
)

type fakeAuthClient struct {
	token string
	err   error
}

func (f *fakeAuthClient) Login(context.Context, string, string) (string, error) {
	return f.token, f.err
}

type fakeTokenStore struct {
	token string
}

func (f *fakeTokenStore) SessionToken() string             { return f.token }
func (f *fakeTokenStore) SetSessionToken(tok string) error { f.token = tok; return nil }
func (f *fakeTokenStore) ClearSessionToken() error         { f.token = ""; return nil }

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func TestLogin_SetsIdentityAndPersistsToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"email": "a@x.com",
		"name":  "Alice",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	prefs := &fakeTokenStore{}
	store := NewStore(&fakeAuthClient{token: token}, prefs, nil)

	require.NoError(t, store.Login(context.Background(), "a@x.com", "pw"))

	ident := store.Identity().Get()
	require.NotNil(t, ident)
	assert.Equal(t, "a@x.com", ident.Email)
	assert.Equal(t, "Alice", ident.Name)
	assert.Equal(t, token, prefs.token)
}

func TestLogin_BadCredentials(t *testing.T) {
	store := NewStore(&fakeAuthClient{err: &remote.ServerError{Status: 401}}, &fakeTokenStore{}, nil)

	err := store.Login(context.Background(), "a@x.com", "wrong")

	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Nil(t, store.Identity().Get())
}

func TestLogin_NetworkFailurePropagates(t *testing.T) {
	store := NewStore(&fakeAuthClient{err: remote.ErrNetworkUnavailable}, &fakeTokenStore{}, nil)

	err := store.Login(context.Background(), "a@x.com", "pw")

	assert.ErrorIs(t, err, remote.ErrNetworkUnavailable)
	assert.NotErrorIs(t, err, ErrBadCredentials)
}

func TestRestore_ValidPersistedToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	store := NewStore(&fakeAuthClient{}, &fakeTokenStore{token: token}, nil)

	store.Restore()

	ident := store.Identity().Get()
	require.NotNil(t, ident)
	assert.Equal(t, "a@x.com", ident.Email)
}

func TestRestore_ExpiredTokenIsDiscarded(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	prefs := &fakeTokenStore{token: token}
	store := NewStore(&fakeAuthClient{}, prefs, nil)

	store.Restore()

	assert.Nil(t, store.Identity().Get())
	assert.Empty(t, prefs.token)
}

func TestRestore_GarbageTokenIsDiscarded(t *testing.T) {
	prefs := &fakeTokenStore{token: "not-a-jwt"}
	store := NewStore(&fakeAuthClient{}, prefs, nil)

	store.Restore()

	assert.Nil(t, store.Identity().Get())
	assert.Empty(t, prefs.token)
}

func TestRestore_NoTokenIsANoOp(t *testing.T) {
	store := NewStore(&fakeAuthClient{}, &fakeTokenStore{}, nil)
	store.Restore()
	assert.Nil(t, store.Identity().Get())
}

func TestLogout_ClearsEverything(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	prefs := &fakeTokenStore{}
	store := NewStore(&fakeAuthClient{token: token}, prefs, nil)
	require.NoError(t, store.Login(context.Background(), "a@x.com", "pw"))

	store.Logout()

	assert.Nil(t, store.Identity().Get())
	assert.Empty(t, prefs.token)
}

func TestLogin_TokenWithoutIdentityClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	store := NewStore(&fakeAuthClient{token: token}, &fakeTokenStore{}, nil)

	err := store.Login(context.Background(), "a@x.com", "pw")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBadCredentials))
	assert.Nil(t, store.Identity().Get())
}
