package user

import (
	"testing"

	"roamly/models"
	"roamly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

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

func newTestService() (*DefaultUserService, *MockUserRepository) {
	repo := new(MockUserRepository)
	return &DefaultUserService{Repo: repo}, repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetByEmail", "ada@example.com").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	resp, err := svc.Register(RegisterInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ada", resp.Name)
	assert.Equal(t, "ada@example.com", resp.Email, "email is normalized to lowercase")

	created := repo.Calls[1].Arguments.Get(0).(*models.User)
	assert.NotEqual(t, "hunter22", created.PasswordHash, "password must never be stored in clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input RegisterInput
	}{
		{name: "missing name", input: RegisterInput{Email: "a@b.com", Password: "hunter22"}},
		{name: "missing email", input: RegisterInput{Name: "Ada", Password: "hunter22"}},
		{name: "malformed email", input: RegisterInput{Name: "Ada", Email: "not-an-email", Password: "hunter22"}},
		{name: "short password", input: RegisterInput{Name: "Ada", Email: "a@b.com", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			_, err := svc.Register(tt.input)

			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			repo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetByEmail", "ada@example.com").Return(&models.User{ID: "u-1"}, nil)

	_, err := svc.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "hunter22"})

	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email is already registered", err.Error())
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, repo := newTestService()
	repo.On("GetByEmail", "ada@example.com").Return(&models.User{
		ID:           "u-1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
	}, nil)

	resp, err := svc.Authenticate("Ada@Example.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, "u-1", resp.ID)
	assert.NotEmpty(t, resp.Token)

	// The issued token round-trips through validation.
	id, err := utils.ExtractIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestAuthenticateBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("GetByEmail", "ghost@example.com").Return(nil, nil)

		_, err := svc.Authenticate("ghost@example.com", "hunter22")

		var authErr AuthenticationError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("GetByEmail", "ada@example.com").Return(&models.User{
			ID: "u-1", Email: "ada@example.com", PasswordHash: string(hash),
		}, nil)

		_, err := svc.Authenticate("ada@example.com", "wrong")

		var authErr AuthenticationError
		require.ErrorAs(t, err, &authErr)
		// Same message either way so callers cannot probe for accounts.
		assert.Equal(t, "invalid email or password", err.Error())
	})
}

func TestGetByID(t *testing.T) {
	svc, repo := newTestService()
	repo.On("GetByID", "u-1").Return(&models.User{ID: "u-1", Name: "Ada"}, nil)

	usr, err := svc.GetByID("u-1")

	require.NoError(t, err)
	assert.Equal(t, "Ada", usr.Name)
}
