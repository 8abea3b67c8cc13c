package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/booking-core/internal/config"
	"github.com/BruksfildServices01/booking-core/internal/store"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		AdminPINHash: string(hash),
	}

	st := store.NewMemoryStore()
	h := NewAuthHandler(cfg, st)

	r := gin.New()
	r.POST("/admin/login", h.AdminLogin)
	r.GET("/admin/session", h.Session)
	return r, st
}

func TestAdminLoginWrongPIN(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"pin":"0000"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginIssuesTokenAndRecordsSession(t *testing.T) {
	r, st := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"pin":"1234"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AdminLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// o login grava o registro lido pelo endpoint de status
	var session AdminSession
	st.Load(context.Background(), store.KeyAdminFlag, &session)
	assert.False(t, session.LastLoginAt.IsZero())
}

func TestAdminSessionEndpoint(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	login := httptest.NewRecorder()
	r.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"pin":"1234"}`)))
	require.Equal(t, http.StatusOK, login.Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/session", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var session AdminSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.False(t, session.LastLoginAt.IsZero())
}
