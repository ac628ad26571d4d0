package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "dispatchboard/internal/config"
	h "dispatchboard/internal/http/handlers"
	"dispatchboard/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsConfig())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	api.Use(middleware.AuthOptional())
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Drivers + availability ledger
		drivers := api.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", middleware.RequireRoles("admin"), h.DeleteDriver)
		drivers.GET("/:id/leaves", h.GetDriverLeaves)
		drivers.POST("/:id/leaves/toggle", h.ToggleDriverLeave)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", middleware.RequireRoles("admin"), h.DeleteBooking)

		// Schedule views
		sched := api.Group("/schedule")
		sched.GET("", h.GetSchedule)
		sched.GET("/header", h.GetScheduleHeader)
		sched.GET("/navigate", h.NavigateSchedule)

		// Driver day manifests
		manifests := api.Group("/manifests")
		manifests.GET("/:driverId", h.GetManifest)
		manifests.GET("/:driverId/share-text", h.GetManifestShareText)
		manifests.GET("/:driverId/pdf", h.GetManifestPDF)

		// Reports
		reports := api.Group("/reports")
		reports.GET("/drivers", h.GetDriverReports)
		reports.GET("/drivers/:id/summary", h.GetDriverSummary)
	}

	h.SetRouter(r)
	return r
}

func corsConfig() gin.HandlerFunc {
	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
