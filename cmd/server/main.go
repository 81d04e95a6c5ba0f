package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tour-platform/internal/api"
	"tour-platform/internal/api/middleware"
	"tour-platform/internal/pricing"
	"tour-platform/internal/repository"
	"tour-platform/internal/scheduler"
	"tour-platform/internal/service"
	"tour-platform/pkg/cache"
	"tour-platform/pkg/config"
	"tour-platform/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoDB, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	log.Println("✅ Connected to MongoDB successfully")

	// Cache: Redis when configured, in-process otherwise
	var appCache cache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		appCache = redisCache
		log.Println("✅ Connected to Redis successfully")
	} else {
		appCache = cache.NewInMemoryCache()
		log.Println("Using in-memory cache (REDIS_ADDR not set)")
	}

	// Initialize repositories
	tourRepo := repository.NewTourRepository(mongoDB.Database)
	couponRepo := repository.NewCouponRepository(mongoDB.Database)
	campaignRepo := repository.NewCampaignRepository(mongoDB.Database)
	bookingRepo := repository.NewBookingRepository(mongoDB.Database)
	settingsRepo := repository.NewSettingsRepository(mongoDB.Database)
	loyaltyRepo := repository.NewLoyaltyRepository(mongoDB.Database)
	auditRepo := repository.NewAuditRepository(mongoDB.Database)
	adminRepo := repository.NewAdminRepository(mongoDB.Database)

	// Initialize services
	policy := pricing.Policy{InfantsCountTowardPrice: cfg.InfantsCountTowardPrice}

	tourSvc := service.NewTourService(tourRepo)
	couponSvc := service.NewCouponService(couponRepo, appCache)
	campaignSvc := service.NewCampaignService(campaignRepo, tourRepo)
	settingsSvc := service.NewSettingsService(settingsRepo, appCache, cfg.SettingsTTL)
	bookingSvc := service.NewBookingService(bookingRepo, tourRepo, loyaltyRepo, couponSvc, settingsSvc, policy)
	authSvc := service.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	auditSvc := service.NewAuditService(auditRepo)

	if err := authSvc.EnsureDefaultAdmin(ctx,
		config.GetEnv("ADMIN_EMAIL", ""),
		config.GetEnv("ADMIN_PASSWORD", "")); err != nil {
		log.Printf("Failed to create default admin: %v", err)
	}

	// Campaign scheduler: hourly by default, also triggerable from the admin
	// panel via POST /api/admin/campaigns/apply
	campaignScheduler := scheduler.New("campaign-apply", cfg.CampaignInterval, func(ctx context.Context) error {
		report, err := campaignSvc.ApplyActiveCampaigns(ctx)
		if err != nil {
			return err
		}
		log.Printf("campaign apply run: %d tours updated, %d failed", report.ToursUpdated, report.ToursFailed)
		return nil
	})
	campaignScheduler.Start()
	defer campaignScheduler.Stop()

	// Rate limiter for the public write endpoints
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer limiter.Stop()

	router := api.NewRouter(api.Services{
		Tours:     tourSvc,
		Coupons:   couponSvc,
		Campaigns: campaignSvc,
		Bookings:  bookingSvc,
		Settings:  settingsSvc,
		Auth:      authSvc,
		Audit:     auditSvc,
	}, limiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
