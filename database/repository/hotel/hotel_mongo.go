package hotelRepo

import (
	"context"
	"fmt"
	"time"

	"roamly/database"
	"roamly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo() HotelRepository {
	coll := database.DB().Collection("hotels")
	repo := &MongoHotelRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes matching the catalog's filter pattern.
func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// Composite index for location/price/rating searches.
		{Keys: bson.D{{Key: "location", Value: 1}, {Key: "price", Value: 1}, {Key: "rating", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new hotel document.
func (r *MongoHotelRepo) Create(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// GetByID retrieves an active hotel by its unique ID.
func (r *MongoHotelRepo) GetByID(id string) (*models.Hotel, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hotel models.Hotel
	err := r.coll.FindOne(ctx, bson.M{"id": id, "isActive": true}).Decode(&hotel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

// List retrieves active hotels matching the query along with the total count.
func (r *MongoHotelRepo) List(q HotelQuery) ([]models.Hotel, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := BuildFilter(q)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count hotels: %w", err)
	}

	opts := options.Find().
		SetSort(BuildSort(q.SortBy)).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	for cursor.Next(ctx) {
		var h models.Hotel
		if err := cursor.Decode(&h); err != nil {
			return nil, 0, fmt.Errorf("failed to decode hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, total, nil
}

// Update applies the given field updates and returns the updated document.
func (r *MongoHotelRepo) Update(id string, set bson.M) (*models.Hotel, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var hotel models.Hotel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&hotel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

// SoftDelete marks a hotel inactive.
func (r *MongoHotelRepo) SoftDelete(id string) (*models.Hotel, error) {
	return r.Update(id, bson.M{"isActive": false})
}
