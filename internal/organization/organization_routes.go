package organization

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	holidays := r.Group("/holidays")
	holidays.Use(auth)
	{
		holidays.GET("", middleware.RBACAuthorize(rbacService, "shift", "read"), h.ListHolidays)
		holidays.POST("", middleware.RBACAuthorize(rbacService, "shift", "manage"), h.AddHoliday)
	}
}
