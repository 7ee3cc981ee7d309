package routes

import (
	"net/http"
	"time"

	"roamly/handlers"
	"roamly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints. All of them
// require authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PUT("/:id", hb.Booking.UpdateBookingHandler)
		api.DELETE("/:id", hb.Booking.CancelBookingHandler)
		api.POST("/:id/payment-intent", hb.Booking.CreatePaymentIntentHandler)
		api.POST("/:id/payment-confirm", hb.Booking.ConfirmPaymentHandler)
	}
}

// RegisterHotelRoutes registers the hotel catalog endpoints.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.GET("", hb.Hotel.ListHotelsHandler)
		api.GET("/:id", hb.Hotel.GetHotelHandler)
		api.POST("", hb.Hotel.CreateHotelHandler)
		api.PUT("/:id", hb.Hotel.UpdateHotelHandler)
		api.DELETE("/:id", hb.Hotel.DeleteHotelHandler)
	}
}

// RegisterFlightRoutes registers the flight search proxy endpoints.
func RegisterFlightRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/flights")
	{
		api.GET("/locations", hb.Flight.SearchLocationsHandler)
		api.GET("/search", hb.Flight.SearchFlightsHandler)
		api.POST("/price", hb.Flight.PriceOffersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roamly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterFlightRoutes(r, hb)
	RegisterHealthRoute(r)
}
