package timesession

import (
	"time"

	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc, rdb *redis.Client) {
	clock := r.Group("/clock")
	clock.Use(auth, middleware.RateLimitByMember(rate.Every(time.Second), 5))
	if rdb != nil {
		clock.Use(middleware.Idempotency(rdb))
	}
	{
		clock.POST("/sessions/start", middleware.RBACAuthorize(rbacService, "time", "create"), h.StartSession)
		clock.POST("/sessions/stop", middleware.RBACAuthorize(rbacService, "time", "create"), h.StopSession)
		clock.POST("/breaks/start", middleware.RBACAuthorize(rbacService, "time", "create"), h.StartBreak)
		clock.POST("/breaks/stop", middleware.RBACAuthorize(rbacService, "time", "create"), h.StopBreak)
		clock.GET("/sessions/open", middleware.RBACAuthorize(rbacService, "time", "read"), h.GetOpenSession)
		clock.GET("/sessions", middleware.RBACAuthorize(rbacService, "time", "read"), h.ListSessions)
	}
}
