package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/user-service/internal/auth"
	"github.com/hongminglow/user-service/internal/config"
	"github.com/hongminglow/user-service/internal/storage/memory"
)

const anaJSON = `{"name":"Ana","email":"ana@x.com","password":"p1","isActive":true,"document":"123"}`

func TestHandlerWithoutAuth(t *testing.T) {
	cfg := config.Config{Port: "0", CORSOrigins: []string{"*"}}
	ts := httptest.NewServer(Handler(cfg, memory.NewUserStore()))
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/users", "application/json", strings.NewReader(anaJSON))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandlerWithAuth(t *testing.T) {
	cfg := config.Config{Port: "0", CORSOrigins: []string{"*"}, JWTSecret: "secret", JWTIssuer: "user-service"}
	ts := httptest.NewServer(Handler(cfg, memory.NewUserStore()))
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/users", "application/json", strings.NewReader(anaJSON))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := auth.NewTokenManager("secret", "user-service", time.Minute).Generate("ops")
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/users", strings.NewReader(anaJSON))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Health stays public.
	resp, err = http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
