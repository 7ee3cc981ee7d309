package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roamly/models"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func newAuthRouter(t *testing.T, repo *MockUserRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Point the auth cache at a closed port so lookups fail fast and the
	// middleware exercises its database fallback.
	prev := utils.AuthCacheClient
	utils.AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	t.Cleanup(func() { utils.AuthCacheClient = prev })

	r := gin.New()
	r.GET("/protected", JWTAuthUserMiddleware(repo), func(c *gin.Context) {
		id, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": id})
	})
	return r
}

func doAuthed(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	repo := new(MockUserRepository)
	r := newAuthRouter(t, repo)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuthed(r, tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	repo := new(MockUserRepository)
	r := newAuthRouter(t, repo)

	w := doAuthed(r, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	repo := new(MockUserRepository)
	r := newAuthRouter(t, repo)

	token, err := utils.GenerateToken("u-1", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	w := doAuthed(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidTokenForExistingUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", "u-1").Return(&models.User{ID: "u-1"}, nil)
	r := newAuthRouter(t, repo)

	token, err := utils.GenerateToken("u-1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	w := doAuthed(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestAuthMiddlewareRejectsDeletedAccount(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", "u-gone").Return(nil, nil)
	r := newAuthRouter(t, repo)

	token, err := utils.GenerateToken("u-gone", "gone@example.com", time.Hour)
	require.NoError(t, err)

	w := doAuthed(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
