package user

import (
	userRepo "roamly/database/repository/user"
	"roamly/models"

	"github.com/go-redis/redis/v8"
)

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// AuthResponse contains the user's ID, token, and profile basics.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UserService handles registration, login and profile lookup.
type UserService interface {
	Register(input RegisterInput) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(userID string) (*models.User, error)
}

// DefaultUserService is the production implementation. AuthCache is optional;
// when set, token hashes are cached so the auth middleware can skip the
// database on repeat requests.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
