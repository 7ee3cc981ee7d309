// File: roamly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roamly/config"
	"roamly/database"
	bookingRepoPkg "roamly/database/repository/booking"
	hotelRepoPkg "roamly/database/repository/hotel"
	userRepoPkg "roamly/database/repository/user"
	"roamly/handlers"
	"roamly/middleware"
	"roamly/routes"
	"roamly/services/booking"
	"roamly/services/flight"
	"roamly/services/hotel"
	"roamly/services/user"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// One-off seed mode: `roamly seed` loads the demo hotel catalog and exits.
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := database.SeedHotels(); err != nil {
			logger.Sugar().Fatalf("main: seeding failed: %v", err)
		}
		return
	}

	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	hotelService := &hotel.DefaultHotelService{
		Repo:  hotelRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		HotelRepo: hotelRepo,
		UserRepo:  userRepo,
	}
	paymentService := booking.NewPaymentService(bookingRepo)

	tokens := flight.NewTokenSource(
		config.AppConfig.AmadeusBaseURL,
		config.AppConfig.AmadeusAPIKey,
		config.AppConfig.AmadeusAPISecret,
		nil,
	)
	flightClient := flight.NewClient(config.AppConfig.AmadeusBaseURL, tokens, nil)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService, logger),
		Booking:  handlers.NewBookingHandler(bookingService, paymentService, logger),
		Hotel:    handlers.NewHotelHandler(hotelService, logger),
		Flight:   handlers.NewFlightHandler(flightClient, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
