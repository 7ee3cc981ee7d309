package booking

import (
	"errors"
	"strings"
	"testing"
	"time"

	bookingRepo "roamly/database/repository/booking"
	hotelRepo "roamly/database/repository/hotel"
	"roamly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// --- mocks ---

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetOwned(id, userID string) (*models.Booking, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListOwned(userID string, f bookingRepo.BookingFilter) ([]models.Booking, int64, error) {
	args := m.Called(userID, f)
	var items []models.Booking
	if args.Get(0) != nil {
		items = args.Get(0).([]models.Booking)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) UpdateOwned(id, userID string, set bson.M) (*models.Booking, error) {
	args := m.Called(id, userID, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(h *models.Hotel) error {
	args := m.Called(h)
	return args.Error(0)
}

func (m *MockHotelRepository) GetByID(id string) (*models.Hotel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

func (m *MockHotelRepository) List(q hotelRepo.HotelQuery) ([]models.Hotel, int64, error) {
	args := m.Called(q)
	var items []models.Hotel
	if args.Get(0) != nil {
		items = args.Get(0).([]models.Hotel)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockHotelRepository) Update(id string, set bson.M) (*models.Hotel, error) {
	args := m.Called(id, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

func (m *MockHotelRepository) SoftDelete(id string) (*models.Hotel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) AppendBooking(userID, bookingID string) error {
	args := m.Called(userID, bookingID)
	return args.Error(0)
}

func newTestService() (*DefaultBookingService, *MockBookingRepository, *MockHotelRepository, *MockUserRepository) {
	repo := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	users := new(MockUserRepository)
	svc := &DefaultBookingService{Repo: repo, HotelRepo: hotels, UserRepo: users}
	return svc, repo, hotels, users
}

func flightInput() CreateBookingInput {
	return CreateBookingInput{
		Type: models.BookingTypeFlight,
		FlightDetails: &models.FlightDetails{
			Origin:        "BOM",
			Destination:   "DEL",
			DepartureDate: time.Now().Add(48 * time.Hour),
			Passengers:    2,
			Price:         5400,
		},
		TotalAmount: 10800,
	}
}

// --- Create ---

func TestCreateFlightBooking(t *testing.T) {
	svc, repo, _, users := newTestService()

	repo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)
	users.On("AppendBooking", "user-1", mock.AnythingOfType("string")).Return(nil)

	b, err := svc.Create("user-1", flightInput())

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, models.PaymentStatusPending, b.PaymentStatus)
	assert.True(t, strings.HasPrefix(b.Reference, "FL"))
	assert.NotNil(t, b.FlightDetails)
	assert.Nil(t, b.HotelDetails)
	repo.AssertExpectations(t)
	users.AssertCalled(t, "AppendBooking", "user-1", b.ID)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateBookingInput
	}{
		{
			name:  "invalid type",
			input: CreateBookingInput{Type: "cruise", TotalAmount: 100},
		},
		{
			name:  "flight without details",
			input: CreateBookingInput{Type: models.BookingTypeFlight, TotalAmount: 100},
		},
		{
			name:  "hotel without details",
			input: CreateBookingInput{Type: models.BookingTypeHotel, TotalAmount: 100},
		},
		{
			name: "negative amount",
			input: CreateBookingInput{
				Type:          models.BookingTypeFlight,
				FlightDetails: &models.FlightDetails{Origin: "BOM", Destination: "DEL"},
				TotalAmount:   -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestService()

			_, err := svc.Create("user-1", tt.input)

			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			repo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreateHotelBookingChecksHotel(t *testing.T) {
	input := CreateBookingInput{
		Type: models.BookingTypeHotel,
		HotelDetails: &models.HotelDetails{
			HotelID: "hotel-9",
			Guests:  2,
			Nights:  3,
			Price:   5000,
		},
		TotalAmount: 15000,
	}

	t.Run("missing or inactive hotel", func(t *testing.T) {
		svc, repo, hotels, _ := newTestService()
		hotels.On("GetByID", "hotel-9").Return(nil, nil)

		_, err := svc.Create("user-1", input)

		var nfErr NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "hotel", nfErr.Resource)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("active hotel", func(t *testing.T) {
		svc, repo, hotels, users := newTestService()
		hotels.On("GetByID", "hotel-9").Return(&models.Hotel{ID: "hotel-9", IsActive: true}, nil)
		repo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)
		users.On("AppendBooking", "user-1", mock.AnythingOfType("string")).Return(nil)

		b, err := svc.Create("user-1", input)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(b.Reference, "HT"))
		assert.Nil(t, b.FlightDetails)
		require.NotNil(t, b.HotelDetails)
		assert.Equal(t, "hotel-9", b.HotelDetails.HotelID)
	})
}

func TestCreateBookingSucceedsWhenUserAppendFails(t *testing.T) {
	svc, repo, _, users := newTestService()

	repo.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)
	users.On("AppendBooking", "user-1", mock.AnythingOfType("string")).Return(errors.New("write failed"))

	b, err := svc.Create("user-1", flightInput())

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
}

// --- Update ---

func TestUpdateBookingPartialFields(t *testing.T) {
	svc, repo, _, _ := newTestService()

	status := models.BookingStatusConfirmed
	updated := &models.Booking{ID: "b-1", Status: status}
	repo.On("UpdateOwned", "b-1", "user-1", mock.MatchedBy(func(set bson.M) bool {
		_, hasPayment := set["paymentStatus"]
		_, hasNotes := set["notes"]
		return set["status"] == status && !hasPayment && !hasNotes
	})).Return(updated, nil)

	b, err := svc.Update("user-1", "b-1", UpdateBookingInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, status, b.Status)
	repo.AssertExpectations(t)
}

func TestUpdateBookingInvalidEnums(t *testing.T) {
	badStatus := models.BookingStatus("teleported")
	badPayment := models.PaymentStatus("iou")

	tests := []struct {
		name  string
		input UpdateBookingInput
	}{
		{name: "bad status", input: UpdateBookingInput{Status: &badStatus}},
		{name: "bad payment status", input: UpdateBookingInput{PaymentStatus: &badPayment}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestService()

			_, err := svc.Update("user-1", "b-1", tt.input)

			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			repo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateBookingNotOwned(t *testing.T) {
	svc, repo, _, _ := newTestService()

	status := models.BookingStatusConfirmed
	// The booking exists but belongs to someone else; the repository query is
	// owner-scoped, so it reports absence.
	repo.On("UpdateOwned", "b-1", "intruder", mock.Anything).Return(nil, nil)

	_, err := svc.Update("intruder", "b-1", UpdateBookingInput{Status: &status})

	var nfErr NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "booking not found", err.Error())
}

// --- Cancel ---

func TestCancelForcesCancelledStatus(t *testing.T) {
	svc, repo, _, _ := newTestService()

	cancelled := &models.Booking{ID: "b-1", Status: models.BookingStatusCancelled}
	repo.On("UpdateOwned", "b-1", "user-1", mock.MatchedBy(func(set bson.M) bool {
		return set["status"] == models.BookingStatusCancelled
	})).Return(cancelled, nil)

	// Works even for a completed booking: cancel never inspects prior state.
	b, err := svc.Cancel("user-1", "b-1")

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, b.Status)
}

func TestCancelMissingBooking(t *testing.T) {
	svc, repo, _, _ := newTestService()

	repo.On("UpdateOwned", "nope", "user-1", mock.Anything).Return(nil, nil)

	_, err := svc.Cancel("user-1", "nope")

	var nfErr NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

// --- List ---

func TestListBookingsPagination(t *testing.T) {
	svc, repo, _, _ := newTestService()

	items := make([]models.Booking, 3)
	repo.On("ListOwned", "user-1", bookingRepo.BookingFilter{Page: 3, Limit: 10}).
		Return(items, int64(23), nil)

	got, pagination, err := svc.List("user-1", ListBookingsQuery{Page: 3, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, 3, pagination.Current)
	assert.Equal(t, 3, pagination.Pages)
	assert.Equal(t, int64(23), pagination.Total)
}

func TestListBookingsDefaults(t *testing.T) {
	svc, repo, _, _ := newTestService()

	repo.On("ListOwned", "user-1", bookingRepo.BookingFilter{Type: "hotel", Page: 1, Limit: 10}).
		Return([]models.Booking{}, int64(0), nil)

	_, pagination, err := svc.List("user-1", ListBookingsQuery{Type: "hotel", Page: 0, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Current)
	assert.Equal(t, 0, pagination.Pages)
}
