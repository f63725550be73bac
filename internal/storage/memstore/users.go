package memstore

import (
	"sort"
	"time"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

func (s *Store) GetUser(id uint64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) GetUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})
	return users, nil
}

func (s *Store) CreateUser(input storage.CreateUserInput) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == input.Username {
			return nil, &storage.ValidationError{Field: "username", Reason: "already taken"}
		}
	}

	user := models.User{
		ID:        s.nextUserID,
		Username:  input.Username,
		Password:  input.Password,
		FullName:  input.FullName,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
		CreatedAt: time.Now(),
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}
