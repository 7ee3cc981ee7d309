package booking

import (
	"fmt"

	bookingRepo "roamly/database/repository/booking"
	"roamly/models"
	"roamly/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// PaymentIntent is the client-facing slice of a created Stripe intent.
type PaymentIntent struct {
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// PaymentService creates payment intents for bookings and records payment
// outcomes on the paymentStatus axis.
type PaymentService interface {
	CreateIntent(userID, bookingID string) (*PaymentIntent, error)
	MarkPaid(userID, bookingID string) (*models.Booking, error)
}

// DefaultPaymentService is the production implementation backed by Stripe.
// NewIntent is injectable for tests.
type DefaultPaymentService struct {
	Repo      bookingRepo.BookingRepository
	NewIntent func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// NewPaymentService wires the Stripe payment-intent API.
func NewPaymentService(repo bookingRepo.BookingRepository) *DefaultPaymentService {
	return &DefaultPaymentService{
		Repo:      repo,
		NewIntent: paymentintent.New,
	}
}

// CreateIntent creates a Stripe payment intent for the booking's total amount.
func (s *DefaultPaymentService) CreateIntent(userID, bookingID string) (*PaymentIntent, error) {
	b, err := s.Repo.GetOwned(bookingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, NotFoundError{Resource: "booking"}
	}
	if b.Status == models.BookingStatusCancelled {
		return nil, ValidationError{Message: "cannot pay for a cancelled booking"}
	}
	if b.PaymentStatus == models.PaymentStatusPaid {
		return nil, ValidationError{Message: "booking is already paid"}
	}

	params := &stripe.PaymentIntentParams{
		// Stripe amounts are in the currency's smallest unit.
		Amount:   stripe.Int64(int64(b.TotalAmount * 100)),
		Currency: stripe.String(string(stripe.CurrencyINR)),
	}
	params.AddMetadata("bookingId", b.ID)
	params.AddMetadata("bookingReference", b.Reference)

	pi, err := s.NewIntent(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("bookingId", b.ID), zap.String("intentId", pi.ID))

	return &PaymentIntent{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       b.TotalAmount,
		Currency:     string(stripe.CurrencyINR),
	}, nil
}

// MarkPaid records a successful payment on the booking.
func (s *DefaultPaymentService) MarkPaid(userID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.UpdateOwned(bookingID, userID, bson.M{"paymentStatus": models.PaymentStatusPaid})
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	if b == nil {
		return nil, NotFoundError{Resource: "booking"}
	}
	return b, nil
}
