package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "kindred/pkg/memcache"
	"kindred/pkg/utils"
)

type staticChecker struct {
	admins map[uuid.UUID]bool
	err    error
}

func (s staticChecker) IsAdmin(_ context.Context, id uuid.UUID) (bool, error) {
	return s.admins[id], s.err
}

func newAuthEngine(tokens *utils.TokenIssuer, denylist mem.TokenDenylist, checker AdminChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/me", JWTAuthMiddleware(tokens, denylist), func(c *gin.Context) {
		id, _ := utils.CurrentUserID(c)
		utils.RespondSuccess(c, gin.H{"id": id.String()}, "")
	})
	r.GET("/admin", JWTAuthMiddleware(tokens, denylist), AdminOnly(checker), func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	denylist := mem.NewMemoryDenylist()
	r := newAuthEngine(tokens, denylist, staticChecker{})

	userID := uuid.New()
	token, err := tokens.CreateToken(userID, "u@example.com")
	require.NoError(t, err)

	w := get(r, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body.Data.(map[string]interface{})["id"])
	assert.NotEmpty(t, body.TraceID)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "garbage").Code)

	forged, err := utils.NewTokenIssuer("other-secret", time.Hour).CreateToken(userID, "u@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", forged).Code)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	require.NoError(t, denylist.Revoke(context.Background(), claims.ID, claims.ExpiresAt.Time))

	w = get(r, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is logged out")
}

func TestAdminOnly(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	admin, user := uuid.New(), uuid.New()
	r := newAuthEngine(tokens, nil, staticChecker{admins: map[uuid.UUID]bool{admin: true}})

	adminToken, err := tokens.CreateToken(admin, "admin@example.com")
	require.NoError(t, err)
	userToken, err := tokens.CreateToken(user, "user@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/admin", adminToken).Code)

	w := get(r, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), utils.ErrAdminOnly.Message)

	broken := newAuthEngine(tokens, nil, staticChecker{err: utils.ErrDatabaseError})
	assert.Equal(t, http.StatusInternalServerError, get(broken, "/admin", adminToken).Code)
}

func TestTraceIDMiddleware_ReusesValidHeader(t *testing.T) {
	r := newAuthEngine(utils.NewTokenIssuer("secret", time.Hour), nil, staticChecker{})
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Trace-ID", incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get("X-Trace-ID"))

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Trace-ID", "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get("X-Trace-ID"))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSMiddleware_AllOriginsWithoutCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, origins := range [][]string{nil, {"*"}} {
		r := gin.New()
		r.Use(CORSMiddleware(origins))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	}
}
