package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

func (s *Store) GetUser(id uint64) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (s *Store) CreateUser(input storage.CreateUserInput) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user := models.User{
		Username:  input.Username,
		Password:  input.Password,
		FullName:  input.FullName,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &storage.ValidationError{Field: "username", Reason: "already taken"}
		}
		return nil, translate(err)
	}
	return &user, nil
}
