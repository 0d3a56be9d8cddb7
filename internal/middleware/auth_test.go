package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

var testSecret = []byte("test-secret")

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signToken(t *testing.T, secret []byte, sub, role string, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func setupAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))

	whoami := func(c *ginext.Context) {
		actor := ActorFromContext(c)
		c.JSON(http.StatusOK, ginext.H{"id": actor.UserID, "role": string(actor.Role)})
	}

	r.GET("/me", Auth(testSecret), whoami)
	r.GET("/admin", Auth(testSecret), AdminOnly(), whoami)
	r.GET("/panic", func(c *ginext.Context) { panic("boom") })
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupAuthRouter(t)

	w := doGet(r, "/me", signToken(t, testSecret, "u1", "user", time.Hour))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["id"])
	assert.Equal(t, "user", body["role"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestAuth_Rejects(t *testing.T) {
	r := setupAuthRouter(t)

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, []byte("other"), "u1", "user", time.Hour)},
		{"expired", signToken(t, testSecret, "u1", "user", -time.Minute)},
		{"no subject", signToken(t, testSecret, "", "admin", time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, "/me", tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuth_UnknownRoleIsUser(t *testing.T) {
	r := setupAuthRouter(t)

	w := doGet(r, "/me", signToken(t, testSecret, "u1", "superuser", time.Hour))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(domain.RoleUser), body["role"])
}

func TestAdminOnly(t *testing.T) {
	r := setupAuthRouter(t)

	w := doGet(r, "/admin", signToken(t, testSecret, "u1", "user", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrAdminOnly.Error())

	w = doGet(r, "/admin", signToken(t, testSecret, "a1", "admin", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_Propagates(t *testing.T) {
	r := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := setupAuthRouter(t)

	w := doGet(r, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
