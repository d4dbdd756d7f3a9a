package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"token":"abc"}`)
	}))
	defer backend.Close()

	client := NewAuthHTTPClient(backend.URL, time.Second, testLogger())

	token, err := client.Login(context.Background(), "user@shop.test", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.Equal(t, map[string]string{"email": "user@shop.test", "password": "hunter2"}, gotBody)
}

func TestLogin_RejectedStatus(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	client := NewAuthHTTPClient(backend.URL, time.Second, testLogger())

	_, err := client.Login(context.Background(), "user@shop.test", "wrong")
	assert.ErrorIs(t, err, ErrAuthRejected)
}

func TestLogin_TransportError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	client := NewAuthHTTPClient(backend.URL, time.Second, testLogger())

	_, err := client.Login(context.Background(), "user@shop.test", "hunter2")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthRejected)
}

func TestRegister_Success(t *testing.T) {
	var gotBody Registration
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer backend.Close()

	client := NewAuthHTTPClient(backend.URL, time.Second, testLogger())

	reg := Registration{FirstName: "Ada", LastName: "L", Email: "ada@shop.test", Password: "s3cret"}
	require.NoError(t, client.Register(context.Background(), reg))
	assert.Equal(t, reg, gotBody)
}

func TestRegister_Rejected(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer backend.Close()

	client := NewAuthHTTPClient(backend.URL, time.Second, testLogger())

	err := client.Register(context.Background(), Registration{Email: "dup@shop.test"})
	assert.ErrorIs(t, err, ErrAuthRejected)
}
