package reservation

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
	rg.GET("/reservations", h.List)
	rg.POST("/reservations", h.Create)
	rg.DELETE("/reservations/:id", h.Delete)
}

// RegisterAdminRoutes expects rg to be behind the admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/reservations/:id", h.AdminDelete)
}

// List returns reservations joined with band name and color.
// @Summary	List reservations
// @Tags		Reservations
// @Param		date		query	string	false	"single date, YYYY-MM-DD"
// @Param		startDate	query	string	false	"range start, inclusive"
// @Param		endDate		query	string	false	"range end, inclusive"
// @Success	200	{object}	map[string]interface{}
// @Router		/reservations [GET]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid query")
		return
	}

	rows, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Create reserves a single half-hour slot.
// @Summary	Create reservation
// @Tags		Reservations
// @Param		request	body	CreateReservationRequest	true	"band_id, date, start_time"
// @Success	201	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}	"missing or malformed fields"
// @Failure	403	{object}	map[string]interface{}	"blocked slot or reservations not open"
// @Failure	409	{object}	map[string]interface{}	"slot already reserved"
// @Router		/reservations [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "band_id, date and start_time are required")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, r, "Reservation confirmed")
}

// Delete removes a reservation owned by the requesting band.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid reservation id")
		return
	}

	var req DeleteReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
			return
		}
	}
	if req.BandID == 0 {
		if v := c.Query("band_id"); v != "" {
			bandID, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid band_id")
				return
			}
			req.BandID = bandID
		}
	}
	if req.BandID == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "band_id is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, req.BandID); err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Reservation deleted")
}

func (h *Handler) AdminDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid reservation id")
		return
	}

	if err := h.service.AdminDelete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Reservation deleted")
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Date or time is not a bookable slot")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, response.CodeConflict, "This time is already reserved")
	case errors.Is(err, ErrBlocked):
		response.Error(c, http.StatusForbidden, response.CodeBlocked, "This time cannot be reserved")
	case errors.Is(err, ErrNotOpen):
		response.Error(c, http.StatusForbidden, response.CodeNotOpen, "Reservations are not open yet")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, "You can only delete your own band's reservations")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Reservation not found")
	case errors.Is(err, ErrBandNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Band not found")
	default:
		zap.L().Error("reservation request failed", zap.Error(err), zap.String("path", c.FullPath()))
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Something went wrong, please try again")
	}
}
