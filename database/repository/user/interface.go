package userRepo

import "roamly/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil, nil when
	// no user with that email exists.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// AppendBooking registers a booking id against the user's booking list.
	AppendBooking(userID, bookingID string) error
}
