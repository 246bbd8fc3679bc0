package member

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	members := r.Group("/members")
	members.Use(auth)
	{
		members.GET("", middleware.RBACAuthorize(rbacService, "member", "manage"), h.GetAll)
		members.POST("", middleware.RBACAuthorize(rbacService, "member", "manage"), h.Create)
		members.GET("/me/team", h.Team)
		members.PUT("/:id/manager", middleware.RBACAuthorize(rbacService, "member", "manage"), h.SetManager)
		members.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "member", "manage"), h.SetStatus)
	}
}
