package settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bandroom/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	s := rg.Group("/settings")
	{
		s.GET("/is-open", h.IsOpen)
		s.GET("/open-time", h.GetOpenTime)
		s.GET("/visible-dates", h.ListVisibleDates)
	}
}

// RegisterAdminRoutes expects rg to be behind the admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/settings/open-time", h.SetOpenTime)
	rg.DELETE("/settings/open-time", h.ClearOpenTime)
	rg.POST("/visible-dates", h.AddVisibleDate)
	rg.DELETE("/visible-dates/:id", h.DeleteVisibleDate)
}

// IsOpen reports whether reservations are open and when they open.
// @Summary	Reservation gate status
// @Tags		Settings
// @Success	200	{object}	GateStatus
// @Router		/settings/is-open [GET]
func (h *Handler) IsOpen(c *gin.Context) {
	st, err := h.service.Status(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) GetOpenTime(c *gin.Context) {
	t, err := h.service.OpenTime(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, OpenTimeResponse{OpenAt: t})
}

// SetOpenTime stores the instant reservations open.
// @Summary	Set open time
// @Tags		Admin
// @Param		request	body	SetOpenTimeRequest	true	"open_at"
// @Success	200	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}
// @Router		/admin/settings/open-time [PUT]
func (h *Handler) SetOpenTime(c *gin.Context) {
	var req SetOpenTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	t, err := h.service.SetOpenTime(c.Request.Context(), req.OpenAt)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, OpenTimeResponse{OpenAt: &t}, "Open time saved")
}

func (h *Handler) ClearOpenTime(c *gin.Context) {
	if err := h.service.ClearOpenTime(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, OpenTimeResponse{}, "Open time cleared")
}

func (h *Handler) ListVisibleDates(c *gin.Context) {
	out, err := h.service.VisibleDates(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) AddVisibleDate(c *gin.Context) {
	var req VisibleDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	v, err := h.service.AddVisibleDate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, v, "Date added")
}

func (h *Handler) DeleteVisibleDate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid id")
		return
	}
	if err := h.service.DeleteVisibleDate(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Date removed")
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "A valid date and time is required")
	case errors.Is(err, ErrDateVisible):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Date is already visible")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Not found")
	default:
		zap.L().Error("settings request failed", zap.Error(err), zap.String("path", c.FullPath()))
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Something went wrong, please try again")
	}
}
