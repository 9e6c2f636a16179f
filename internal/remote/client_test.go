package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"code":"G502","category":"Mice","brand":"Logitech","name":"Logitech G502","priceCents":4999,"description":"HERO sensor"},
			{"code":"PS5","category":"Consoles","brand":"Sony","name":"PlayStation 5","priceCents":49999,"description":""}
		]`))
	}))
	defer srv.Close()

	records, err := New(srv.URL, nil).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "G502", records[0].Code)
	assert.Equal(t, int64(49999), records[1].PriceCents)
}

func TestClient_FetchProducts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).FetchProducts(context.Background())

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusInternalServerError, srvErr.Status)
}

func TestClient_FetchProducts_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).FetchProducts(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_FetchProducts_NetworkUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := New(srv.URL, nil).FetchProducts(context.Background())
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"token":"tok-123"}`))
	}))
	defer srv.Close()

	token, err := New(srv.URL, nil).Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestClient_Login_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Login(context.Background(), "a@x.com", "wrong")

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusUnauthorized, srvErr.Status)
}

func TestClient_Login_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":""}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Login(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
