// Package server assembles the HTTP surface from the feature modules.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bandroom/internal/config"
	"bandroom/internal/middleware"
	"bandroom/internal/modules/admin"
	"bandroom/internal/modules/band"
	"bandroom/internal/modules/blocking"
	"bandroom/internal/modules/live"
	"bandroom/internal/modules/reservation"
	"bandroom/internal/modules/settings"
	jwtsvc "bandroom/internal/pkg/jwt"
	"bandroom/internal/repository"
)

// App is the wired service. Settings is exposed so callers can swap its clock.
type App struct {
	Router   *gin.Engine
	Hub      *live.Hub
	Settings *settings.Service
}

func New(cfg *config.Config, db *gorm.DB) *App {
	bandRepo := repository.NewBandRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	blockedRepo := repository.NewBlockedTimeRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	visibleRepo := repository.NewVisibleDateRepository(db)

	hub := live.NewHub()
	tokens := jwtsvc.New(cfg.JWTSecret, cfg.AdminTokenTTL)

	adminService := admin.NewService(cfg.AdminPassword, cfg.AdminPasswordHash, tokens)
	adminHandler := admin.NewHandler(adminService)

	settingsService := settings.NewService(settingRepo, visibleRepo, hub, cfg.Location())
	settingsHandler := settings.NewHandler(settingsService)

	bandHandler := band.NewHandler(band.NewService(bandRepo, hub))

	reservationService := reservation.NewService(
		reservationRepo,
		blockedRepo,
		bandRepo,
		settingsService,
		hub,
		cfg.EnforceOpenTime,
	)
	reservationHandler := reservation.NewHandler(reservationService)

	blockingHandler := blocking.NewHandler(blocking.NewService(blockedRepo))
	liveHandler := live.NewHandler(hub, cfg.Origins())

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.CORS(cfg.Origins()),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC()})
	})
	liveHandler.RegisterRoutes(r)

	api := r.Group("/api")
	{
		bandHandler.RegisterRoutes(api)
		reservationHandler.RegisterRoutes(api)
		settingsHandler.RegisterRoutes(api)

		loginLimiter := middleware.NewRateLimiter(cfg.AdminLoginPerMinute)
		adminHandler.RegisterRoutes(api, loginLimiter.Middleware())

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AdminAuth(adminService))
		{
			adminHandler.RegisterAdminRoutes(adminGroup)
			bandHandler.RegisterAdminRoutes(adminGroup)
			reservationHandler.RegisterAdminRoutes(adminGroup)
			settingsHandler.RegisterAdminRoutes(adminGroup)
			blockingHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	return &App{Router: r, Hub: hub, Settings: settingsService}
}
