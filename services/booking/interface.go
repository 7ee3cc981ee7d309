package booking

import (
	bookingRepo "roamly/database/repository/booking"
	hotelRepo "roamly/database/repository/hotel"
	userRepo "roamly/database/repository/user"
	"roamly/models"
)

// CreateBookingInput carries the client payload for creating a booking. The
// booking reference is always generated server side; anything the client
// sends for it is ignored.
type CreateBookingInput struct {
	Type          models.BookingType    `json:"type"`
	FlightDetails *models.FlightDetails `json:"flightDetails,omitempty"`
	HotelDetails  *models.HotelDetails  `json:"hotelDetails,omitempty"`
	TotalAmount   float64               `json:"totalAmount"`
	Notes         string                `json:"notes,omitempty"`
}

// UpdateBookingInput carries partial changes; nil fields are left unchanged.
type UpdateBookingInput struct {
	Status        *models.BookingStatus `json:"status,omitempty"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
}

// ListBookingsQuery filters and paginates a user's booking list.
type ListBookingsQuery struct {
	Type   string
	Status string
	Page   int
	Limit  int
}

// BookingService governs the booking lifecycle. Every operation is scoped to
// the requesting user.
type BookingService interface {
	Create(userID string, input CreateBookingInput) (*models.Booking, error)
	Get(userID, id string) (*models.Booking, error)
	List(userID string, q ListBookingsQuery) ([]models.Booking, models.Pagination, error)
	Update(userID, id string, input UpdateBookingInput) (*models.Booking, error)
	Cancel(userID, id string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	HotelRepo hotelRepo.HotelRepository
	UserRepo  userRepo.UserRepository
}
