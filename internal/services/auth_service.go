package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/workflowhq/workflow-api/internal/constants"
	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUsernameLength     = errors.New("username must be between 3 and 50 characters")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	store storage.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(store storage.Store) *AuthService {
	return &AuthService{store: store}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Username  string
	Password  string
	FullName  string
	Email     string
	AvatarURL string
}

// Signup creates a new user with a hashed password.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < constants.MinUsernameLength || len(username) > constants.MaxUsernameLength {
		return nil, ErrUsernameLength
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.store.GetUserByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(storage.CreateUserInput{
		Username:  username,
		Password:  string(hashed),
		FullName:  input.FullName,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		if storage.IsValidation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// LoginInput represents login credentials.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the matching user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.store.GetUserByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !verifyPassword(user.Password, input.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// verifyPassword checks a candidate password against the stored value.
// Passwords created through Signup are bcrypt hashes; demo seed rows store
// the password as an opaque plain string and are compared in constant time.
func verifyPassword(stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
