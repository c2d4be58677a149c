package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sohilkhan0021/anceller-admin-sub002/handlers"
	"github.com/Sohilkhan0021/anceller-admin-sub002/middleware"
	"github.com/Sohilkhan0021/anceller-admin-sub002/utils"
)

// HandlerBundle aggregates the console's handlers for route registration.
type HandlerBundle struct {
	Auth     *handlers.AuthHandler
	Booking  *handlers.BookingHandler
	Provider *handlers.ProviderHandler
	Audit    *handlers.AuditHandler

	// Revoker backs the admin auth middleware's sign-out check.
	Revoker utils.TokenRevoker
}

// RegisterAuthRoutes sets up admin login and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/logout", middleware.JWTAuthAdminMiddleware(hb.Revoker), hb.Auth.LogoutHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin/bookings")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.Revoker))
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.GET("/:id/actions", hb.Booking.GetBookingActionsHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterProviderRoutes sets up the provider verification and account endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin/providers")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.Revoker))
		api.GET("", hb.Provider.ListProvidersHandler)
		api.GET("/:id", hb.Provider.GetProviderHandler)
		api.GET("/:id/actions", hb.Provider.GetProviderActionsHandler)
		api.POST("/:id/status", hb.Provider.ChangeProviderStatusHandler)
		api.POST("/:id/documents/:docId/verify", hb.Provider.VerifyDocumentHandler)
	}
}

// RegisterAuditRoutes sets up the admin action trail endpoints.
func RegisterAuditRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin/audit")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.Revoker))
		api.GET("", hb.Audit.ListAuditHandler)
		api.GET("/:entityType/:entityId", hb.Audit.EntityAuditHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Anceller Admin"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterAuditRoutes(r, hb)
}
