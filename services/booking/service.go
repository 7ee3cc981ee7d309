package booking

import (
	"fmt"

	bookingRepo "roamly/database/repository/booking"
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

// newBooking builds a fully formed booking record before any persistence
// call. Exactly one details variant is kept, matching the type.
func newBooking(userID string, input CreateBookingInput) *models.Booking {
	b := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        userID,
		Type:          input.Type,
		TotalAmount:   input.TotalAmount,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		Reference:     NewBookingReference(input.Type),
		Notes:         input.Notes,
	}
	switch input.Type {
	case models.BookingTypeFlight:
		b.FlightDetails = input.FlightDetails
	case models.BookingTypeHotel:
		b.HotelDetails = input.HotelDetails
	}
	return b
}

// Create validates the input, builds the booking record and persists it,
// then registers the booking against the owning user's booking list.
func (s *DefaultBookingService) Create(userID string, input CreateBookingInput) (*models.Booking, error) {
	if !input.Type.IsValid() {
		return nil, ValidationError{Message: "invalid booking type"}
	}
	if input.Type == models.BookingTypeFlight && input.FlightDetails == nil {
		return nil, ValidationError{Message: "flight details are required for flight booking"}
	}
	if input.Type == models.BookingTypeHotel && input.HotelDetails == nil {
		return nil, ValidationError{Message: "hotel details are required for hotel booking"}
	}
	if input.TotalAmount < 0 {
		return nil, ValidationError{Message: "total amount cannot be negative"}
	}

	// For hotel bookings with a hotel reference, the hotel must exist and be active.
	if input.Type == models.BookingTypeHotel && input.HotelDetails.HotelID != "" {
		hotel, err := s.HotelRepo.GetByID(input.HotelDetails.HotelID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify hotel: %w", err)
		}
		if hotel == nil {
			return nil, NotFoundError{Resource: "hotel"}
		}
	}

	b := newBooking(userID, input)
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// The booking document is the source of truth; a failed list append is
	// logged and not surfaced.
	if err := s.UserRepo.AppendBooking(userID, b.ID); err != nil {
		utils.GetLogger().Warn("failed to register booking on user",
			zap.String("userId", userID), zap.String("bookingId", b.ID), zap.Error(err))
	}

	return b, nil
}

// Get retrieves a single booking owned by the user.
func (s *DefaultBookingService) Get(userID, id string) (*models.Booking, error) {
	b, err := s.Repo.GetOwned(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, NotFoundError{Resource: "booking"}
	}
	return b, nil
}

// List retrieves the user's bookings newest-first with pagination metadata.
func (s *DefaultBookingService) List(userID string, q ListBookingsQuery) ([]models.Booking, models.Pagination, error) {
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)

	items, total, err := s.Repo.ListOwned(userID, bookingRepo.BookingFilter{
		Type:   q.Type,
		Status: q.Status,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list bookings: %w", err)
	}
	return items, models.NewPagination(q.Page, q.Limit, total), nil
}

// Update applies partial status/paymentStatus/notes changes to an owned
// booking. Status transitions are not gated beyond enum validity; the status
// and payment axes move independently by design.
func (s *DefaultBookingService) Update(userID, id string, input UpdateBookingInput) (*models.Booking, error) {
	set := bson.M{}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, ValidationError{Message: "invalid booking status"}
		}
		set["status"] = *input.Status
	}
	if input.PaymentStatus != nil {
		if !input.PaymentStatus.IsValid() {
			return nil, ValidationError{Message: "invalid payment status"}
		}
		set["paymentStatus"] = *input.PaymentStatus
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}
	if len(set) == 0 {
		return s.Get(userID, id)
	}

	b, err := s.Repo.UpdateOwned(id, userID, set)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if b == nil {
		return nil, NotFoundError{Resource: "booking"}
	}
	return b, nil
}

// Cancel forces the booking to cancelled regardless of its current state.
func (s *DefaultBookingService) Cancel(userID, id string) (*models.Booking, error) {
	b, err := s.Repo.UpdateOwned(id, userID, bson.M{"status": models.BookingStatusCancelled})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if b == nil {
		return nil, NotFoundError{Resource: "booking"}
	}
	return b, nil
}
