package main

import (
	"time"

	"github.com/Tsoggam/blitz/config"
	"github.com/Tsoggam/blitz/models"
	"github.com/Tsoggam/blitz/routes"
	"github.com/Tsoggam/blitz/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.Player{}, &models.GameHistory{})

	r := routes.SetupRouter(db)

	// Daily purge of players inactive beyond the retention window (best-effort)
	utils.StartPlayerPurger(db, 24*time.Hour, models.RetentionWindow)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
