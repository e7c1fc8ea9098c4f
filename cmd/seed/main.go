package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"bandroom/internal/config"
	"bandroom/internal/database"
	"bandroom/internal/domain"
	"bandroom/internal/pkg/logger"
	"bandroom/internal/pkg/slots"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if config.IsProdLike(cfg.AppEnv) {
		log.Fatal("refusing to seed a prod-like environment")
	}
	if _, err := logger.New(cfg.AppEnv, cfg.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zap.L().Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zap.L().Fatal("migration failed", zap.Error(err))
	}

	// Cleanup old data (children first)
	zap.L().Info("cleaning old data")
	for _, table := range []string{"reservations", "blocked_times", "visible_dates", "settings", "bands"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			zap.L().Fatal("cleanup failed", zap.String("table", table), zap.Error(err))
		}
	}

	zap.L().Info("creating bands")
	bands := []domain.Band{
		{Name: "Midnight Static", Color: "#6C5CE7"},
		{Name: "Paper Lanterns", Color: "#00B894"},
		{Name: "Loud Neighbours", Color: "#E17055"},
		{Name: "Slow Tempo Club", Color: "#0984E3"},
	}
	if err := db.Create(&bands).Error; err != nil {
		zap.L().Fatal("create bands failed", zap.Error(err))
	}

	week := slots.Week(slots.WeekStart(time.Now().In(cfg.Location())))
	catalog := slots.Catalog()

	zap.L().Info("creating reservations")
	var reservations []domain.Reservation
	for i, d := range week {
		// a few evening slots per day, rotating bands
		for j := 0; j < 3; j++ {
			s := catalog[18+(i+j*4)%14]
			b := bands[(i+j)%len(bands)]
			reservations = append(reservations, domain.Reservation{
				BandID:    b.ID,
				Date:      d.Format(slots.DateLayout),
				StartTime: s.String(),
				EndTime:   s.Next().String(),
			})
		}
	}
	if err := db.Create(&reservations).Error; err != nil {
		zap.L().Fatal("create reservations failed", zap.Error(err))
	}

	reason := "Equipment maintenance"
	blocked := domain.BlockedTime{
		Date:      week[3].Format(slots.DateLayout),
		StartTime: "09:00",
		EndTime:   "12:00",
		Reason:    &reason,
	}
	if err := db.Create(&blocked).Error; err != nil {
		zap.L().Fatal("create blocked time failed", zap.Error(err))
	}

	var visible []domain.VisibleDate
	for _, d := range week {
		visible = append(visible, domain.VisibleDate{Date: d.Format(slots.DateLayout), WeekNumber: 1})
	}
	if err := db.Create(&visible).Error; err != nil {
		zap.L().Fatal("create visible dates failed", zap.Error(err))
	}

	zap.L().Info("seed complete",
		zap.Int("bands", len(bands)),
		zap.Int("reservations", len(reservations)),
		zap.String("week_of", week[0].Format(slots.DateLayout)),
	)
}
