package bookingRepo

import (
	"roamly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingFilter holds the filter and pagination parameters for a user's
// booking list. Empty Type/Status mean no constraint.
type BookingFilter struct {
	Type   string
	Status string
	Page   int
	Limit  int
}

// BookingRepository defines methods for booking data access. Every lookup and
// mutation is scoped to the owning user; a booking belonging to someone else
// is indistinguishable from one that does not exist.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetOwned retrieves a booking by id for the given owner. Returns
	// nil, nil when no such booking exists for that owner.
	GetOwned(id, userID string) (*models.Booking, error)
	// ListOwned retrieves the owner's bookings newest-first, with the total
	// count of matching documents across all pages.
	ListOwned(userID string, f BookingFilter) ([]models.Booking, int64, error)
	// UpdateOwned applies the given field updates to an owned booking and
	// returns the updated document. Returns nil, nil when absent.
	UpdateOwned(id, userID string, set bson.M) (*models.Booking, error)
}
