package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tsoggam/blitz/config"
	"github.com/Tsoggam/blitz/controllers"
	"github.com/Tsoggam/blitz/middleware"
	"github.com/Tsoggam/blitz/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Access log and panic recovery go to a dedicated rolling zap logger
	if gin.Mode() != gin.TestMode {
		gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
		if err == nil {
			r.Use(ginzap.Ginzap(gl, time.RFC3339, true))
			r.Use(ginzap.RecoveryWithZap(gl, false))
		} else {
			// fallback to default recovery if logger failed to init
			r.Use(gin.Recovery())
		}
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware())

	playerController := controllers.NewPlayerController(db)
	rankingController := controllers.NewRankingController(db)
	historyController := controllers.NewHistoryController(db)
	maintenanceController := controllers.NewMaintenanceController(db)

	r.GET("/", maintenanceController.Index)

	api := r.Group("/api")
	{
		api.GET("/player/:username", playerController.GetPlayer)
		api.POST("/player/:username/update", playerController.UpdatePlayer)
		api.POST("/batch-update", playerController.BatchUpdate)
		api.GET("/ranking", rankingController.GetRanking)
		api.GET("/history", historyController.GetHistory)
		api.POST("/history/add", historyController.AddHistory)
		api.POST("/cleanup", maintenanceController.Cleanup)
		api.GET("/health", maintenanceController.Health)
	}

	return r
}
