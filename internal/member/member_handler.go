package member

import (
	"net/http"

	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("member.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("member.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("member request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.Create(c.Request.Context(), c.GetString(middleware.CtxOrgID), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.service.ListActive(c.Request.Context(), c.GetString(middleware.CtxOrgID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	res := make([]MemberResponse, len(rows))
	for i, m := range rows {
		res[i] = ToResponse(m)
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) SetManager(c *gin.Context) {
	var req SetManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	err := h.service.SetManager(
		c.Request.Context(),
		c.GetString(middleware.CtxOrgID),
		c.GetString(middleware.CtxMemberID),
		c.Param("id"),
		req.ManagerID,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member_id": c.Param("id"), "manager_id": req.ManagerID}, nil)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	err := h.service.SetStatus(
		c.Request.Context(),
		c.GetString(middleware.CtxOrgID),
		c.GetString(middleware.CtxMemberID),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member_id": c.Param("id"), "status": req.Status}, nil)
}

// Team lists the caller's transitive reports.
func (h *Handler) Team(c *gin.Context) {
	managerID := c.GetString(middleware.CtxMemberID)
	ids, err := h.service.ListTeamMemberIDs(c.Request.Context(), c.GetString(middleware.CtxOrgID), managerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, TeamResponse{ManagerID: managerID, MemberIDs: ids}, nil)
}
