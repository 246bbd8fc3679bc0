package middleware

import (
	"go-workforce/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger and identity metadata to the
// request context so services can log without knowing about gin. It must run
// after AuthMiddleware to pick up member and org.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		attachRequestContext(c, logger)
		c.Next()
	}
}

func attachRequestContext(c *gin.Context, logger *zap.Logger) {
	rid := requestIDFor(c)
	c.Set(CtxRequestID, rid)
	c.Header(HeaderRequestID, rid)

	memberID := c.GetString(CtxMemberID)
	orgID := c.GetString(CtxOrgID)

	reqLogger := logger.With(
		zap.String("request_id", rid),
		zap.String("member_id", memberID),
		zap.String("org_id", orgID),
	)

	ctx := c.Request.Context()
	ctx = contextutil.WithRequestID(ctx, rid)
	ctx = contextutil.WithMemberID(ctx, memberID)
	ctx = contextutil.WithOrgID(ctx, orgID)
	ctx = contextutil.WithLogger(ctx, reqLogger)
	c.Request = c.Request.WithContext(ctx)
}
