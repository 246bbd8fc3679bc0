package timesession

import (
	"net/http"

	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	rbac    middleware.RBACService
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, rbac middleware.RBACService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("timesession.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesession.handler")
	}
	return &Handler{service: service, rdb: rdb, rbac: rbac, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	middleware.ReleaseIdempotencyLock(c, h.rdb)
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("clock request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("kind", string(apperror.KindOf(err))),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(dst)
}

func (h *Handler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.StartSession(c.Request.Context(), c.GetString(middleware.CtxOrgID), c.GetString(middleware.CtxMemberID), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	middleware.StoreIdempotentResult(c, h.rdb, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) StopSession(c *gin.Context) {
	resp, err := h.service.StopSession(c.Request.Context(), c.GetString(middleware.CtxOrgID), c.GetString(middleware.CtxMemberID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	middleware.StoreIdempotentResult(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) StartBreak(c *gin.Context) {
	var req StartBreakRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.StartBreak(c.Request.Context(), c.GetString(middleware.CtxOrgID), c.GetString(middleware.CtxMemberID), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	middleware.StoreIdempotentResult(c, h.rdb, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) StopBreak(c *gin.Context) {
	var req StopBreakRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.StopBreak(c.Request.Context(), c.GetString(middleware.CtxOrgID), c.GetString(middleware.CtxMemberID), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	middleware.StoreIdempotentResult(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetOpenSession(c *gin.Context) {
	resp, err := h.service.GetOpenSession(c.Request.Context(), c.GetString(middleware.CtxOrgID), c.GetString(middleware.CtxMemberID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// ListSessions shows the caller's own sessions unless they hold time:read_all.
func (h *Handler) ListSessions(c *gin.Context) {
	var q ListSessionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	self := c.GetString(middleware.CtxMemberID)
	if q.MemberID != self && !h.canReadAll(c) {
		if q.MemberID != "" {
			h.writeServiceError(c, errForbidden)
			return
		}
		q.MemberID = self
	}

	resp, err := h.service.ListSessions(c.Request.Context(), c.GetString(middleware.CtxOrgID), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.Count(len(resp)))
}

func (h *Handler) canReadAll(c *gin.Context) bool {
	return h.rbac != nil && middleware.HasPermission(c, h.rbac, "time", "read_all")
}

var errForbidden = apperror.New(apperror.CodeForbidden, "You can only view your own sessions", http.StatusForbidden)
