package hotel

import (
	hotelRepo "roamly/database/repository/hotel"
	"roamly/models"

	"github.com/go-redis/redis/v8"
)

// UpdateHotelInput carries partial listing changes; nil fields are left
// unchanged.
type UpdateHotelInput struct {
	Name        *string         `json:"name,omitempty"`
	Location    *string         `json:"location,omitempty"`
	Address     *models.Address `json:"address,omitempty"`
	Price       *float64        `json:"price,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
	Facilities  *[]string       `json:"facilities,omitempty"`
	Images      *[]string       `json:"images,omitempty"`
	Description *string         `json:"description,omitempty"`
	Rooms       *[]models.Room  `json:"rooms,omitempty"`
	Contact     *models.Contact `json:"contact,omitempty"`
}

// HotelService manages the hotel catalog. All reads are restricted to active
// hotels; deletion is a soft isActive flip.
type HotelService interface {
	List(q hotelRepo.HotelQuery) ([]models.Hotel, models.Pagination, error)
	Get(id string) (*models.Hotel, error)
	Create(hotel *models.Hotel) (*models.Hotel, error)
	Update(id string, input UpdateHotelInput) (*models.Hotel, error)
	Delete(id string) error
}

// DefaultHotelService is the production implementation. Cache is optional;
// when set, single-hotel reads are served through Redis.
type DefaultHotelService struct {
	Repo  hotelRepo.HotelRepository
	Cache *redis.Client
}
