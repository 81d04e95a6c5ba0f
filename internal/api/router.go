package api

import (
	"net/http"

	"tour-platform/internal/api/handlers"
	"tour-platform/internal/api/middleware"
	"tour-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs.
type Services struct {
	Tours     *service.TourService
	Coupons   *service.CouponService
	Campaigns *service.CampaignService
	Bookings  *service.BookingService
	Settings  *service.SettingsService
	Auth      *service.AuthService
	Audit     *service.AuditService
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(svcs Services, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	tourHandler := handlers.NewTourHandler(svcs.Tours, svcs.Audit)
	couponHandler := handlers.NewCouponHandler(svcs.Coupons, svcs.Audit)
	campaignHandler := handlers.NewCampaignHandler(svcs.Campaigns, svcs.Audit)
	bookingHandler := handlers.NewBookingHandler(svcs.Bookings, svcs.Audit)
	settingsHandler := handlers.NewSettingsHandler(svcs.Settings, svcs.Audit)
	authHandler := handlers.NewAuthHandler(svcs.Auth, svcs.Audit)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/status", settingsHandler.Status)
		api.GET("/tours", tourHandler.ListPublic)
		api.GET("/tours/:id", tourHandler.Get)

		api.POST("/coupons/validate", middleware.RateLimit(limiter), couponHandler.Validate)
		api.POST("/bookings", middleware.RateLimit(limiter), bookingHandler.Create)
		api.GET("/bookings/:reference", bookingHandler.GetByReference)

		api.POST("/admin/login", authHandler.Login)

		admin := api.Group("/admin", middleware.RequireAdmin(svcs.Auth))
		{
			admin.GET("/tours", tourHandler.ListAdmin)
			admin.POST("/tours", tourHandler.Create)
			admin.PATCH("/tours/:id", tourHandler.Update)
			admin.DELETE("/tours/:id", tourHandler.Delete)

			admin.GET("/coupons", couponHandler.List)
			admin.POST("/coupons", couponHandler.Create)
			admin.PATCH("/coupons/:id", couponHandler.Update)
			admin.DELETE("/coupons/:id", couponHandler.Delete)

			admin.GET("/campaigns", campaignHandler.List)
			admin.POST("/campaigns", campaignHandler.Create)
			admin.PATCH("/campaigns/:id", campaignHandler.Update)
			admin.DELETE("/campaigns/:id", campaignHandler.Delete)
			admin.POST("/campaigns/apply", campaignHandler.Apply)

			admin.GET("/bookings", bookingHandler.List)
			admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			admin.GET("/loyalty/:email", bookingHandler.Loyalty)

			admin.GET("/settings", settingsHandler.Get)
			admin.PUT("/settings", settingsHandler.Update)
			admin.POST("/settings/kill-switch", settingsHandler.KillSwitch)

			admin.GET("/audit-logs", authHandler.AuditLogs)
		}
	}

	return router
}
