package handlers

import (
	userRepo "roamly/database/repository/user"
)

// HandlerBundle collects the wired handlers and the repositories the route
// middleware needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth    *AuthHandler
	Booking *BookingHandler
	Hotel   *HotelHandler
	Flight  *FlightHandler
}
