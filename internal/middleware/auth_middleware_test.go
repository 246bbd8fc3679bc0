package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func identityClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":   "u-1",
		"member_id": "m-1",
		"org_id":    "o-1",
		"role":      "manager",
		"exp":       exp.Unix(),
	}
}

func TestAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(seen *map[string]string) *gin.Engine {
		r := gin.New()
		r.GET("/me", middleware.Authenticated(testSecret, zap.NewNop()), func(c *gin.Context) {
			ctx := c.Request.Context()
			*seen = map[string]string{
				"member":     c.GetString(middleware.CtxMemberID),
				"org":        contextutil.GetOrgID(ctx),
				"request_id": contextutil.GetRequestID(ctx),
			}
			c.Status(http.StatusNoContent)
		})
		return r
	}

	t.Run("valid token populates gin and request context", func(t *testing.T) {
		var seen map[string]string
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, identityClaims(time.Now().Add(time.Hour))))
		req.Header.Set("X-Request-ID", "rid-42")
		w := httptest.NewRecorder()
		newRouter(&seen).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "m-1", seen["member"])
		assert.Equal(t, "o-1", seen["org"])
		assert.Equal(t, "rid-42", seen["request_id"])
	})

	t.Run("missing token", func(t *testing.T) {
		var seen map[string]string
		w := httptest.NewRecorder()
		newRouter(&seen).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, seen)
	})

	t.Run("expired token", func(t *testing.T) {
		var seen map[string]string
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, identityClaims(time.Now().Add(-time.Minute))))
		w := httptest.NewRecorder()
		newRouter(&seen).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("token without org claim", func(t *testing.T) {
		var seen map[string]string
		claims := identityClaims(time.Now().Add(time.Hour))
		delete(claims, "org_id")
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
		w := httptest.NewRecorder()
		newRouter(&seen).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, seen)
	})
}
