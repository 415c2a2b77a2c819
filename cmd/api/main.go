package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/dannojb/fpl-optimizer-backend/internal/api/handlers"
	"github.com/dannojb/fpl-optimizer-backend/internal/api/middleware"
	"github.com/dannojb/fpl-optimizer-backend/internal/config"
	"github.com/dannojb/fpl-optimizer-backend/internal/data"
	"github.com/dannojb/fpl-optimizer-backend/internal/metrics"
	"github.com/dannojb/fpl-optimizer-backend/internal/store"
	"github.com/dannojb/fpl-optimizer-backend/internal/syncer"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	clock := clockwork.NewRealClock()
	cache := data.NewBootstrapCache(cfg.FPL.CacheTTL, clock)
	fplClient := data.NewFPLClient(cfg.FPL.BaseURL, cache)
	st := store.New()
	syncService := syncer.New(fplClient, st, clock, cfg.Sync.MaxAge)

	// Warm the store up front so the first request doesn't pay for a full
	// bootstrap fetch. Failure is non-fatal; request paths re-check.
	if _, err := syncService.SyncBootstrap(context.Background(), false); err != nil {
		log.Printf("Initial bootstrap sync failed: %v", err)
	}

	// Background refresh keeps request-path syncs rare.
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(cfg.Sync.Interval),
		gocron.NewTask(func() {
			if syncService.ShouldSync(syncer.SyncTypeBootstrap) {
				if _, err := syncService.SyncBootstrap(context.Background(), false); err != nil {
					log.Printf("Scheduled sync failed: %v", err)
				}
			}
		}),
	)
	if err != nil {
		log.Fatalf("Failed to create sync job: %v", err)
	}
	sched.Start()
	defer func() {
		if err := sched.Shutdown(); err != nil {
			log.Printf("Error stopping scheduler: %v", err)
		}
	}()

	// Set up Gin router
	router := gin.New()
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	teamHandler := handlers.NewTeamHandler(st, fplClient, syncService)
	optimizeHandler := handlers.NewOptimizeHandler(st, fplClient, syncService, cfg.Optimizer.PoolLimit)
	playersHandler := handlers.NewPlayersHandler(st)
	syncHandler := handlers.NewSyncHandler(syncService)
	healthHandler := handlers.NewHealthHandler(st)

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API routes
	api := router.Group("/api")
	{
		api.GET("/team/:team_id", teamHandler.GetTeam)
		api.POST("/optimize", optimizeHandler.Optimize)
		api.GET("/players/search", playersHandler.Search)
		api.POST("/sync", syncHandler.ForceSync)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
