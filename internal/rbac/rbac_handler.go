package rbac

import (
	"net/http"

	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("rbac.handler")}
}

// AssignRole binds the member in the path to a named role of the caller's org.
func (h *Handler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperror.MapValidationError(err))
		return
	}
	orgID := c.GetString(middleware.CtxOrgID)
	if err := h.service.AssignRole(orgID, c.Param("id"), req.Role); err != nil {
		h.fail(c, apperror.Integrity(err))
		return
	}
	h.logger.Info("role assigned",
		zap.String("org_id", orgID),
		zap.String("member_id", c.Param("id")),
		zap.String("role", req.Role),
	)
	response.Success(c, http.StatusOK, gin.H{"member_id": c.Param("id"), "role": req.Role}, nil)
}

func (h *Handler) fail(c *gin.Context, err error) {
	e := apperror.ToHTTP(err)
	response.Error(c, e.Status, e.Code, e.Message, e.Details)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.RBACService, auth gin.HandlerFunc) {
	r.PUT("/members/:id/role", auth, middleware.RBACAuthorize(enforcer, "member", "manage"), h.AssignRole)
}
