package hotelRepo

import (
	"roamly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Sort selectors accepted by HotelQuery.SortBy. Anything else falls back to
// price ascending.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortName      = "name"
)

// HotelQuery holds the filter, sort and pagination parameters for a hotel
// listing. Nil bounds mean "no constraint on that field".
type HotelQuery struct {
	Location  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	SortBy    string
	Page      int
	Limit     int
}

// HotelRepository defines methods for hotel data access. All read paths are
// restricted to active hotels.
type HotelRepository interface {
	// Create inserts a new hotel record.
	Create(hotel *models.Hotel) error
	// GetByID retrieves an active hotel by its unique ID. Returns nil, nil
	// when no active hotel with that id exists.
	GetByID(id string) (*models.Hotel, error)
	// List retrieves active hotels matching the query, with the total count
	// of matching documents across all pages.
	List(q HotelQuery) ([]models.Hotel, int64, error)
	// Update applies the given field updates and returns the updated hotel.
	// Returns nil, nil when no hotel with that id exists.
	Update(id string, set bson.M) (*models.Hotel, error)
	// SoftDelete marks a hotel inactive. Returns nil, nil when absent.
	SoftDelete(id string) (*models.Hotel, error)
}
