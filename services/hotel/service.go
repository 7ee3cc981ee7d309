package hotel

import (
	"context"
	"encoding/json"
	"fmt"

	hotelRepo "roamly/database/repository/hotel"
	"roamly/models"
	"roamly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const defaultPageLimit = 10

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

// List retrieves active hotels matching the query with pagination metadata.
func (s *DefaultHotelService) List(q hotelRepo.HotelQuery) ([]models.Hotel, models.Pagination, error) {
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)

	items, total, err := s.Repo.List(q)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list hotels: %w", err)
	}
	return items, models.NewPagination(q.Page, q.Limit, total), nil
}

// Get retrieves a single active hotel, via the Redis cache when available.
func (s *DefaultHotelService) Get(id string) (*models.Hotel, error) {
	if s.Cache != nil {
		if cached := s.cacheGet(id); cached != nil {
			return cached, nil
		}
	}

	h, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotel: %w", err)
	}
	if h == nil {
		return nil, NotFoundError{}
	}

	if s.Cache != nil {
		s.cacheSet(h)
	}
	return h, nil
}

// Create validates and persists a new listing.
func (s *DefaultHotelService) Create(hotel *models.Hotel) (*models.Hotel, error) {
	if hotel.Name == "" {
		return nil, ValidationError{Message: "hotel name is required"}
	}
	if hotel.Location == "" {
		return nil, ValidationError{Message: "location is required"}
	}
	if hotel.Price < 0 {
		return nil, ValidationError{Message: "price cannot be negative"}
	}
	if hotel.Rating == 0 {
		hotel.Rating = models.DefaultHotelRating
	}
	if hotel.Rating < 1 || hotel.Rating > 5 {
		return nil, ValidationError{Message: "rating must be between 1 and 5"}
	}
	if len(hotel.Description) > models.MaxHotelDescriptionLen {
		return nil, ValidationError{Message: "description cannot exceed 1000 characters"}
	}

	hotel.ID = uuid.New().String()
	hotel.IsActive = true

	if err := s.Repo.Create(hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return hotel, nil
}

// Update applies partial listing changes and invalidates the cache entry.
func (s *DefaultHotelService) Update(id string, input UpdateHotelInput) (*models.Hotel, error) {
	set := bson.M{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, ValidationError{Message: "hotel name is required"}
		}
		set["name"] = *input.Name
	}
	if input.Location != nil {
		if *input.Location == "" {
			return nil, ValidationError{Message: "location is required"}
		}
		set["location"] = *input.Location
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, ValidationError{Message: "price cannot be negative"}
		}
		set["price"] = *input.Price
	}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, ValidationError{Message: "rating must be between 1 and 5"}
		}
		set["rating"] = *input.Rating
	}
	if input.Facilities != nil {
		set["facilities"] = *input.Facilities
	}
	if input.Images != nil {
		set["images"] = *input.Images
	}
	if input.Description != nil {
		if len(*input.Description) > models.MaxHotelDescriptionLen {
			return nil, ValidationError{Message: "description cannot exceed 1000 characters"}
		}
		set["description"] = *input.Description
	}
	if input.Rooms != nil {
		set["rooms"] = *input.Rooms
	}
	if input.Contact != nil {
		set["contact"] = *input.Contact
	}

	if len(set) == 0 {
		return s.Get(id)
	}

	h, err := s.Repo.Update(id, set)
	if err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	if h == nil {
		return nil, NotFoundError{}
	}

	s.cacheInvalidate(id)
	return h, nil
}

// Delete soft-deletes the listing and invalidates the cache entry.
func (s *DefaultHotelService) Delete(id string) error {
	h, err := s.Repo.SoftDelete(id)
	if err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	if h == nil {
		return NotFoundError{}
	}

	s.cacheInvalidate(id)
	return nil
}

// --- Redis read cache ---

func (s *DefaultHotelService) cacheGet(id string) *models.Hotel {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, utils.HotelCachePrefix+id).Result()
	if err != nil {
		return nil
	}
	var h models.Hotel
	if err := json.Unmarshal([]byte(data), &h); err != nil {
		return nil
	}
	return &h
}

func (s *DefaultHotelService) cacheSet(h *models.Hotel) {
	data, err := json.Marshal(h)
	if err != nil {
		return
	}
	ctx := context.Background()
	if err := s.Cache.Set(ctx, utils.HotelCachePrefix+h.ID, data, utils.HotelCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache hotel", zap.String("id", h.ID), zap.Error(err))
	}
}

func (s *DefaultHotelService) cacheInvalidate(id string) {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	if err := s.Cache.Del(ctx, utils.HotelCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate hotel cache", zap.String("id", id), zap.Error(err))
	}
}
