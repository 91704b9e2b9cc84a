package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"marinahub/api/internal/security"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			c.JSON(http.StatusOK, gin.H{"user_id": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return r
}

func request(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	r := authTestRouter(Auth(testSecret))

	w := request(t, r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"Authorization token required","error":"invalid_token"}`, w.Body.String())
}

func TestAuth_InvalidToken(t *testing.T) {
	r := authTestRouter(Auth(testSecret))

	w := request(t, r, "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	r := authTestRouter(Auth(testSecret))

	token, err := security.GenerateToken(testSecret, 7, "u@example.com", nil, time.Hour)
	require.NoError(t, err)

	w := request(t, r, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id":7}`, w.Body.String())
}

func TestOptionalAuth_NoTokenContinuesAsGuest(t *testing.T) {
	r := authTestRouter(OptionalAuth(testSecret))

	w := request(t, r, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id":null}`, w.Body.String())
}

func TestOptionalAuth_InvalidTokenSwallowed(t *testing.T) {
	r := authTestRouter(OptionalAuth(testSecret))

	w := request(t, r, "garbage")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id":null}`, w.Body.String())
}

func TestOptionalAuth_ValidTokenAttachesClaims(t *testing.T) {
	r := authTestRouter(OptionalAuth(testSecret))

	token, err := security.GenerateToken(testSecret, 9, "u@example.com", nil, time.Hour)
	require.NoError(t, err)

	w := request(t, r, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id":9}`, w.Body.String())
}
