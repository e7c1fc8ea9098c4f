package band

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
	rg.GET("/bands", h.List)
	rg.POST("/bands", h.Create)
	rg.PUT("/bands/:id", h.Update)
}

// RegisterAdminRoutes expects rg to be behind the admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/bands/:id", h.Delete)
}

// List returns every band, newest first.
// @Summary	List bands
// @Tags		Bands
// @Success	200	{object}	map[string]interface{}
// @Router		/bands [GET]
func (h *Handler) List(c *gin.Context) {
	bands, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, bands)
}

// Create registers a new band.
// @Summary	Create band
// @Tags		Bands
// @Param		request	body	BandRequest	true	"name and color"
// @Success	201	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}
// @Router		/bands [POST]
func (h *Handler) Create(c *gin.Context) {
	var req BandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, b, "Band created")
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid band id")
		return
	}

	var req BandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, b, "Band updated")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid band id")
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, res, "Band deleted")
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Band name and color are required")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Band not found")
	default:
		zap.L().Error("band request failed", zap.Error(err), zap.String("path", c.FullPath()))
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Something went wrong, please try again")
	}
}
