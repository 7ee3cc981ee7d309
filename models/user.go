package models

import "time"

// User represents a platform user. Bookings holds the ids of the user's
// bookings, appended whenever a booking is created.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Bookings     []string  `bson:"bookings,omitempty" json:"bookings,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
