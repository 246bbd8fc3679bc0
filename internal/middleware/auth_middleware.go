package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	CtxUserID   = "user_id"
	CtxMemberID = "member_id"
	CtxOrgID    = "org_id"
	CtxRole     = "role"
)

// AuthMiddleware validates an HMAC-signed bearer token (or access_token cookie)
// and copies its identity claims into the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			c.Abort()
			return
		}
		c.Next()
	}
}

// Authenticated is AuthMiddleware followed by ContextLogger in one handler,
// for route groups that take a single auth func.
func Authenticated(secret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			c.Abort()
			return
		}
		attachRequestContext(c, logger)
		c.Next()
	}
}

func authenticate(c *gin.Context, secret string) bool {
	tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		tokenString = ""
	}
	if tokenString == "" {
		if cookie, err := c.Cookie("access_token"); err == nil {
			tokenString = cookie
		}
	}
	if tokenString == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
		return false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		code, message := "INVALID_TOKEN", "Invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			code, message = "TOKEN_EXPIRED", "Token has expired"
		}
		response.Error(c, http.StatusUnauthorized, code, message, nil)
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
		return false
	}

	userID, _ := claims["user_id"].(string)
	memberID, _ := claims["member_id"].(string)
	orgID, _ := claims["org_id"].(string)
	if userID == "" || memberID == "" || orgID == "" {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token is missing identity claims", nil)
		return false
	}
	role, _ := claims["role"].(string)

	c.Set(CtxUserID, userID)
	c.Set(CtxMemberID, memberID)
	c.Set(CtxOrgID, orgID)
	c.Set(CtxRole, role)
	return true
}
