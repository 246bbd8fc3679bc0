package payroll

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc, rdb *redis.Client) {
	periods := r.Group("/payroll/periods")
	periods.Use(auth)
	if rdb != nil {
		periods.Use(middleware.Idempotency(rdb))
	}
	{
		periods.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), h.ListPeriods)
		periods.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), h.CreatePeriod)
		periods.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), h.GetPeriod)
		periods.GET("/:id/lines", middleware.RBACAuthorize(rbacService, "payroll", "read"), h.ListLines)
		periods.GET("/:id/export", middleware.RBACAuthorize(rbacService, "payroll", "export"), h.Export)
		periods.POST("/:id/generate", middleware.RBACAuthorize(rbacService, "payroll", "generate"), h.Generate)
		periods.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "payroll", "approve"), h.Approve)
		periods.POST("/:id/lock", middleware.RBACAuthorize(rbacService, "payroll", "lock"), h.Lock)
	}
}
