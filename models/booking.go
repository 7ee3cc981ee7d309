package models

import "time"

// BookingType distinguishes the two kinds of bookings the platform records.
type BookingType string

const (
	BookingTypeFlight BookingType = "flight"
	BookingTypeHotel  BookingType = "hotel"
)

// IsValid reports whether the type is a recognized booking type.
func (t BookingType) IsValid() bool {
	return t == BookingTypeFlight || t == BookingTypeHotel
}

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// bookingTransitions documents the conventional lifecycle. Updates are not
// gated on it; cancel in particular is always allowed.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
	BookingStatusCancelled: {},
	BookingStatusCompleted: {},
}

// IsValid reports whether the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving to target follows the conventional
// lifecycle.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the lifecycle defines no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// PaymentStatus tracks the payment axis independently of the booking status.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid reports whether the status is a recognized payment status.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// FlightDetails holds the itinerary for a flight booking.
type FlightDetails struct {
	Origin        string    `bson:"origin" json:"origin"`
	Destination   string    `bson:"destination" json:"destination"`
	DepartureDate time.Time `bson:"departureDate" json:"departureDate"`
	ReturnDate    time.Time `bson:"returnDate,omitempty" json:"returnDate,omitempty"`
	Passengers    int       `bson:"passengers" json:"passengers"`
	Cabin         string    `bson:"cabin,omitempty" json:"cabin,omitempty"`
	Airline       string    `bson:"airline,omitempty" json:"airline,omitempty"`
	FlightNumber  string    `bson:"flightNumber,omitempty" json:"flightNumber,omitempty"`
	Price         float64   `bson:"price" json:"price"`
}

// HotelDetails holds the stay details for a hotel booking.
type HotelDetails struct {
	HotelID  string    `bson:"hotelId,omitempty" json:"hotelId,omitempty"`
	CheckIn  time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut time.Time `bson:"checkOut" json:"checkOut"`
	Guests   int       `bson:"guests" json:"guests"`
	RoomType string    `bson:"roomType,omitempty" json:"roomType,omitempty"`
	Nights   int       `bson:"nights" json:"nights"`
	Price    float64   `bson:"price" json:"price"`
}

// Booking represents a travel booking owned by a user. Exactly one of
// FlightDetails/HotelDetails is populated, matching Type; the constructor in
// services/booking enforces this before anything is persisted.
type Booking struct {
	ID            string         `bson:"id" json:"id"`
	UserID        string         `bson:"userId" json:"userId"`
	Type          BookingType    `bson:"type" json:"type"`
	FlightDetails *FlightDetails `bson:"flightDetails,omitempty" json:"flightDetails,omitempty"`
	HotelDetails  *HotelDetails  `bson:"hotelDetails,omitempty" json:"hotelDetails,omitempty"`
	TotalAmount   float64        `bson:"totalAmount" json:"totalAmount"`
	Status        BookingStatus  `bson:"status" json:"status"`
	PaymentStatus PaymentStatus  `bson:"paymentStatus" json:"paymentStatus"`
	Reference     string         `bson:"bookingReference" json:"bookingReference"`
	Notes         string         `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}
