package admin

import (
	"errors"
	"net/http"

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

// RegisterRoutes mounts the public login route; mw runs before it.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	rg.POST("/admin/login", append(mw, h.Login)...)
}

// RegisterAdminRoutes expects rg to be behind the admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", h.Session)
}

// Login exchanges the admin password for a bearer token.
// @Summary	Admin login
// @Tags		Admin
// @Param		request	body	LoginRequest	true	"password"
// @Success	200	{object}	LoginResponse
// @Failure	401	{object}	map[string]interface{}
// @Router		/admin/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	res, err := h.service.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Password is required")
		case errors.Is(err, ErrInvalidCredentials):
			zap.L().Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Admin authentication required")
		default:
			zap.L().Error("admin login failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Something went wrong, please try again")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Session lets the admin UI check stored credentials before showing controls.
func (h *Handler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"admin": true})
}
