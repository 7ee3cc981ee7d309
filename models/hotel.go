package models

import "time"

// Address is the structured postal address of a hotel.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
}

// Room describes one bookable room category within a hotel.
type Room struct {
	Type      string  `bson:"type" json:"type"`
	Price     float64 `bson:"price" json:"price"`
	Available int     `bson:"available" json:"available"`
}

// Contact holds the hotel's contact information.
type Contact struct {
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Hotel represents a hotel listing. Deletion is soft: IsActive is flipped to
// false and the document is excluded from every read path.
type Hotel struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Location    string    `bson:"location" json:"location"`
	Address     Address   `bson:"address,omitempty" json:"address,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Rating      float64   `bson:"rating" json:"rating"`
	Facilities  []string  `bson:"facilities,omitempty" json:"facilities,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Rooms       []Room    `bson:"rooms,omitempty" json:"rooms,omitempty"`
	Contact     Contact   `bson:"contact,omitempty" json:"contact,omitempty"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

const (
	// MaxHotelDescriptionLen caps the free-text description.
	MaxHotelDescriptionLen = 1000
	// DefaultHotelRating is applied when a new listing carries no rating.
	DefaultHotelRating = 3
)
