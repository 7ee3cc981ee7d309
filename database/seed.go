package database

import (
	"context"
	"fmt"
	"time"

	"roamly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// demoHotels is the starter catalog used for local development and demos.
var demoHotels = []models.Hotel{
	{
		Name:     "Taj Palace",
		Location: "Mumbai",
		Address: models.Address{
			Street: "Apollo Bunder", City: "Mumbai", State: "Maharashtra",
			Country: "India", ZipCode: "400001",
		},
		Price:       15000,
		Rating:      5,
		Facilities:  []string{"Free Wi-Fi", "Swimming Pool", "Spa", "Gym", "Restaurant", "Room Service", "Concierge"},
		Images:      []string{"tajpalace.png"},
		Description: "Luxury hotel in the heart of Mumbai with stunning views of the Gateway of India and Arabian Sea.",
		Rooms: []models.Room{
			{Type: "Deluxe Room", Price: 15000, Available: 10},
			{Type: "Executive Suite", Price: 25000, Available: 5},
			{Type: "Presidential Suite", Price: 50000, Available: 2},
		},
		Contact: models.Contact{Phone: "+91-22-6665-3366", Email: "reservations@tajpalace.com"},
	},
	{
		Name:     "Hotel Patna Inn",
		Location: "Patna",
		Address: models.Address{
			Street: "Fraser Road", City: "Patna", State: "Bihar",
			Country: "India", ZipCode: "800001",
		},
		Price:       5000,
		Rating:      4,
		Facilities:  []string{"Free Breakfast", "Wi-Fi", "Parking", "AC Rooms", "Restaurant"},
		Images:      []string{"hotelpatnainn.png"},
		Description: "Comfortable business hotel in the center of Patna with modern amenities.",
		Rooms: []models.Room{
			{Type: "Standard Room", Price: 5000, Available: 15},
			{Type: "Deluxe Room", Price: 7000, Available: 8},
			{Type: "Suite", Price: 10000, Available: 3},
		},
		Contact: models.Contact{Phone: "+91-612-222-3333", Email: "info@patnainn.com"},
	},
	{
		Name:     "Delhi Grand",
		Location: "Delhi",
		Address: models.Address{
			Street: "Connaught Place", City: "New Delhi", State: "Delhi",
			Country: "India", ZipCode: "110001",
		},
		Price:       12000,
		Rating:      4,
		Facilities:  []string{"Gym", "Restaurant", "Pool", "Wi-Fi", "Parking", "Business Center"},
		Images:      []string{"delhigrand.png"},
		Description: "Premium hotel in the heart of Delhi with easy access to major attractions.",
		Rooms: []models.Room{
			{Type: "Superior Room", Price: 12000, Available: 12},
			{Type: "Executive Room", Price: 18000, Available: 6},
			{Type: "Grand Suite", Price: 30000, Available: 4},
		},
		Contact: models.Contact{Phone: "+91-11-4567-8900", Email: "bookings@delhigrand.com"},
	},
	{
		Name:     "Bengaluru Heights",
		Location: "Bengaluru",
		Address: models.Address{
			Street: "MG Road", City: "Bengaluru", State: "Karnataka",
			Country: "India", ZipCode: "560001",
		},
		Price:       8000,
		Rating:      4,
		Facilities:  []string{"Wi-Fi", "Rooftop Restaurant", "Gym", "Airport Shuttle"},
		Images:      []string{"bengaluruheights.png"},
		Description: "Modern business hotel close to the tech corridors and nightlife of Bengaluru.",
		Rooms: []models.Room{
			{Type: "Standard Room", Price: 8000, Available: 20},
			{Type: "Club Room", Price: 11000, Available: 7},
		},
		Contact: models.Contact{Phone: "+91-80-2222-4444", Email: "stay@bengaluruheights.com"},
	},
	{
		Name:     "Jaipur Haveli",
		Location: "Jaipur",
		Address: models.Address{
			Street: "Amer Road", City: "Jaipur", State: "Rajasthan",
			Country: "India", ZipCode: "302001",
		},
		Price:       2000,
		Rating:      3,
		Facilities:  []string{"Wi-Fi", "Courtyard", "Restaurant", "Parking"},
		Images:      []string{"jaipurhaveli.png"},
		Description: "Heritage-style stay minutes from the Amber Fort.",
		Rooms: []models.Room{
			{Type: "Heritage Room", Price: 2000, Available: 18},
			{Type: "Royal Suite", Price: 4500, Available: 4},
		},
		Contact: models.Contact{Phone: "+91-141-555-6666", Email: "desk@jaipurhaveli.com"},
	},
}

// SeedHotels inserts the demo hotel catalog. It is idempotent: hotels are
// matched by name and only inserted when absent.
func SeedHotels() error {
	coll := DB().Collection("hotels")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted := 0
	for _, h := range demoHotels {
		count, err := coll.CountDocuments(ctx, bson.M{"name": h.Name})
		if err != nil {
			return fmt.Errorf("failed to check for existing hotel %q: %w", h.Name, err)
		}
		if count > 0 {
			continue
		}

		h.ID = uuid.New().String()
		h.IsActive = true
		now := time.Now()
		h.CreatedAt = now
		h.UpdatedAt = now

		if _, err := coll.InsertOne(ctx, h); err != nil {
			return fmt.Errorf("failed to seed hotel %q: %w", h.Name, err)
		}
		inserted++
	}

	fmt.Printf("Seeded %d hotels\n", inserted)
	return nil
}
