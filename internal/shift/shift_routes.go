package shift

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	shifts := r.Group("/shifts")
	shifts.Use(auth)
	{
		shifts.GET("", middleware.RBACAuthorize(rbacService, "shift", "read"), h.ListShifts)
		shifts.POST("", middleware.RBACAuthorize(rbacService, "shift", "manage"), h.CreateShift)
		shifts.PUT("/:id", middleware.RBACAuthorize(rbacService, "shift", "manage"), h.UpdateShift)
		shifts.POST("/assignments", middleware.RBACAuthorize(rbacService, "shift", "manage"), h.AssignShift)
	}

	rules := r.Group("/break-rules")
	rules.Use(auth)
	{
		rules.GET("", middleware.RBACAuthorize(rbacService, "shift", "read"), h.ListBreakRules)
		rules.POST("", middleware.RBACAuthorize(rbacService, "shift", "manage"), h.CreateBreakRule)
	}
}
