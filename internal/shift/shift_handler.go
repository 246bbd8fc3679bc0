package shift

import (
	"net/http"

	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateShift(c *gin.Context) {
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.CreateShift(c.Request.Context(), c.GetString(middleware.CtxOrgID), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateShift(c *gin.Context) {
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.UpdateShift(c.Request.Context(), c.GetString(middleware.CtxOrgID), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListShifts(c *gin.Context) {
	resp, err := h.service.ListShifts(c.Request.Context(), c.GetString(middleware.CtxOrgID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.Count(len(resp)))
}

func (h *Handler) AssignShift(c *gin.Context) {
	var req AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.AssignShift(
		c.Request.Context(),
		c.GetString(middleware.CtxOrgID),
		c.GetString(middleware.CtxMemberID),
		req,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateBreakRule(c *gin.Context) {
	var req BreakRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.CreateBreakRule(c.Request.Context(), c.GetString(middleware.CtxOrgID), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListBreakRules(c *gin.Context) {
	resp, err := h.service.ListBreakRules(c.Request.Context(), c.GetString(middleware.CtxOrgID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
