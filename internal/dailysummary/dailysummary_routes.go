package dailysummary

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	summaries := r.Group("/summaries")
	summaries.Use(auth)
	{
		summaries.GET("/today", middleware.RBACAuthorize(rbacService, "time", "read"), h.Today)
		summaries.GET("/daily", middleware.RBACAuthorize(rbacService, "time", "read"), h.Daily)
		summaries.GET("/logs", middleware.RBACAuthorize(rbacService, "time", "read_all"), h.Logs)
		summaries.POST("/apply", middleware.RBACAuthorize(rbacService, "time", "manage"), h.Apply)
	}
}
