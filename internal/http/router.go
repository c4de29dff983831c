package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware())

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
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireAuth(), h.Me)

		// Everything below requires a logged-in user.
		authed := api.Group("")
		authed.Use(middleware.RequireAuth())

		// User administration (admin only)
		users := authed.Group("/users", middleware.RequireAdmin())
		users.GET("", h.GetUsers)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.PUT("/:id/toggle", h.ToggleUser)
		users.PUT("/:id/password", h.ChangeUserPassword)

		// Daily dashboard, trip management, seat maps and fare quotes
		trips := authed.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.POST("", h.CreateTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.GET("/:id/seats", h.GetTripSeats)
		trips.GET("/:id/fare", h.GetTripFare)
		trips.GET("/:id/tickets", h.GetTripTickets)

		// Ticket sales
		tickets := authed.Group("/tickets")
		tickets.POST("", h.SellTicket)
		tickets.PUT("/:id/cancel", h.CancelTicket)
		tickets.GET("/:id/pdf", h.GetTicketPDF)
		authed.GET("/sales", h.GetSales)

		// Fares admin
		fares := authed.Group("/fares")
		fares.GET("", h.GetFares)
		fares.POST("", middleware.RequireAdmin(), h.CreateFare)
		fares.PUT("/:id", middleware.RequireAdmin(), h.UpdateFare)
		fares.DELETE("/:id", middleware.RequireAdmin(), h.DeleteFare)

		// Catalog
		routes := authed.Group("/routes")
		routes.GET("", h.GetRoutes)
		routes.GET("/:id/stops", h.GetRouteStops)
		routes.POST("", h.CreateRoute)
		routes.PUT("/:id", h.UpdateRoute)
		routes.DELETE("/:id", h.DeleteRoute)

		buses := authed.Group("/buses")
		buses.GET("", h.GetBuses)
		buses.POST("", h.CreateBus)
		buses.PUT("/:id", h.UpdateBus)
		buses.DELETE("/:id", h.DeleteBus)

		classes := authed.Group("/service-classes")
		classes.GET("", h.GetServiceClasses)
		classes.POST("", h.CreateServiceClass)

		drivers := authed.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)

		employees := authed.Group("/employees")
		employees.GET("", h.GetEmployees)
		employees.POST("", h.CreateEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)

		passengers := authed.Group("/passengers")
		passengers.GET("", h.GetPassengers)
		passengers.POST("", h.CreatePassenger)
		passengers.PUT("/:id", h.UpdatePassenger)
		passengers.DELETE("/:id", h.DeletePassenger)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins := []string{}
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
