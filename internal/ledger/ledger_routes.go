package ledger

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	entries := r.Group("/ledger")
	entries.Use(auth)
	{
		entries.GET("", middleware.RBACAuthorize(rbacService, "ledger", "read"), h.List)
		entries.POST("/fines", middleware.RBACAuthorize(rbacService, "ledger", "create"), h.AddFine)
		entries.POST("/adjustments", middleware.RBACAuthorize(rbacService, "ledger", "create"), h.AddAdjustment)
	}
}
