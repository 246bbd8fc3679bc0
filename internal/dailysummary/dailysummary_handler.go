package dailysummary

import (
	"net/http"

	dailysummaryerrors "go-workforce/internal/dailysummary/errors"
	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
	logger  *zap.Logger
}

func NewHandler(service Service, rbac middleware.RBACService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dailysummary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailysummary.handler")
	}
	return &Handler{service: service, rbac: rbac, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("summary request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.service.GetTodaySummary(
		c.Request.Context(),
		c.GetString(middleware.CtxOrgID),
		c.GetString(middleware.CtxMemberID),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Daily returns the caller's summary for a date; reading another member
// needs time:read_all.
func (h *Handler) Daily(c *gin.Context) {
	var q DailySummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	date, err := civildate.Parse(q.Date)
	if err != nil {
		h.writeServiceError(c, dailysummaryerrors.ErrInvalidDate)
		return
	}

	memberID := c.GetString(middleware.CtxMemberID)
	if q.MemberID != "" && q.MemberID != memberID {
		if !h.canReadAll(c) {
			h.writeServiceError(c, errForbidden)
			return
		}
		memberID = q.MemberID
	}

	resp, err := h.service.GetDailySummary(c.Request.Context(), c.GetString(middleware.CtxOrgID), memberID, date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logs(c *gin.Context) {
	var q DailySummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	date, err := civildate.Parse(q.Date)
	if err != nil {
		h.writeServiceError(c, dailysummaryerrors.ErrInvalidDate)
		return
	}

	resp, err := h.service.ListDailyLogs(c.Request.Context(), c.GetString(middleware.CtxOrgID), date, q.MemberID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.Count(len(resp)))
}

func (h *Handler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	date, err := civildate.Parse(req.Date)
	if err != nil {
		h.writeServiceError(c, dailysummaryerrors.ErrInvalidDate)
		return
	}

	if err := h.service.ApplyShiftRulesToDay(c.Request.Context(), c.GetString(middleware.CtxOrgID), req.MemberID, date); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member_id": req.MemberID, "date": req.Date}, nil)
}

func (h *Handler) canReadAll(c *gin.Context) bool {
	return h.rbac != nil && middleware.HasPermission(c, h.rbac, "time", "read_all")
}

var errForbidden = apperror.New(apperror.CodeForbidden, "You can only view your own summaries", http.StatusForbidden)
