package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workflowhq/workflow-api/internal/storage"
	"github.com/workflowhq/workflow-api/internal/storage/memstore"
)

func newAuthService() *AuthService {
	return NewAuthService(memstore.New())
}

// TestSignup_Success tests user registration with a hashed password
func TestSignup_Success(t *testing.T) {
	service := newAuthService()

	user, err := service.Signup(SignupInput{
		Username: "alice",
		Password: "supersecret",
		FullName: "Alice Example",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "supersecret", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"))
}

// TestSignup_PasswordTooShort tests the minimum password length
func TestSignup_PasswordTooShort(t *testing.T) {
	service := newAuthService()

	_, err := service.Signup(SignupInput{
		Username: "alice",
		Password: "short",
		FullName: "Alice Example",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

// TestSignup_UsernameLength tests the username length bounds
func TestSignup_UsernameLength(t *testing.T) {
	service := newAuthService()

	_, err := service.Signup(SignupInput{
		Username: "ab",
		Password: "supersecret",
		FullName: "Alice Example",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameLength)

	_, err = service.Signup(SignupInput{
		Username: strings.Repeat("a", 51),
		Password: "supersecret",
		FullName: "Alice Example",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameLength)
}

// TestSignup_UsernameTaken tests duplicate registration
func TestSignup_UsernameTaken(t *testing.T) {
	service := newAuthService()

	_, err := service.Signup(SignupInput{
		Username: "alice",
		Password: "supersecret",
		FullName: "Alice Example",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, err = service.Signup(SignupInput{
		Username: "alice",
		Password: "differentpass",
		FullName: "Other Alice",
		Email:    "other@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

// TestLogin_Success tests login with the signup password
func TestLogin_Success(t *testing.T) {
	service := newAuthService()

	created, err := service.Signup(SignupInput{
		Username: "alice",
		Password: "supersecret",
		FullName: "Alice Example",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	user, err := service.Login(LoginInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

// TestLogin_WrongPassword tests credential rejection
func TestLogin_WrongPassword(t *testing.T) {
	service := newAuthService()

	_, err := service.Signup(SignupInput{
		Username: "alice",
		Password: "supersecret",
		FullName: "Alice Example",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, err = service.Login(LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// TestLogin_UnknownUser tests that a missing user looks like bad credentials
func TestLogin_UnknownUser(t *testing.T) {
	service := newAuthService()

	_, err := service.Login(LoginInput{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// TestLogin_SeededPlainPassword tests login against demo rows, which store
// the password without hashing
func TestLogin_SeededPlainPassword(t *testing.T) {
	store := memstore.New()
	_, err := store.CreateUser(storage.CreateUserInput{
		Username: "sarahchen",
		Password: "password123",
		FullName: "Sarah Chen",
		Email:    "sarah@workflow.com",
	})
	require.NoError(t, err)

	service := NewAuthService(store)

	user, err := service.Login(LoginInput{Username: "sarahchen", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "sarahchen", user.Username)

	_, err = service.Login(LoginInput{Username: "sarahchen", Password: "password124"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
