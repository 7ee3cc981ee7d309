package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roamly/models"
	"roamly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long issued JWTs stay valid.
const tokenDuration = 24 * time.Hour

// Register creates a new user account and returns an auth token.
func (s *DefaultUserService) Register(input RegisterInput) (*AuthResponse, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" {
		return nil, ValidationError{Message: "name is required"}
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, ValidationError{Message: "a valid email is required"}
	}
	if len(input.Password) < 6 {
		return nil, ValidationError{Message: "password must be at least 6 characters"}
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ValidationError{Message: "email is already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		PhoneNumber:  input.PhoneNumber,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies the credentials and returns a fresh auth token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, AuthenticationError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, AuthenticationError{}
	}

	return s.issueToken(usr)
}

// GetByID retrieves the user's profile.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, NotFoundError{}
	}
	return usr, nil
}

func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// Prime the auth cache so the middleware can validate without a DB hit.
	if s.AuthCache != nil {
		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + usr.ID
		if err := s.AuthCache.Set(ctx, cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.String("userId", usr.ID), zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:    usr.ID,
		Token: token,
		Name:  usr.Name,
		Email: usr.Email,
	}, nil
}
