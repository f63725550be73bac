package gormstore

import (
	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

func (s *Store) GetWorkspace(id uint64) (*models.Workspace, error) {
	var ws models.Workspace
	if err := s.db.First(&ws, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ws, nil
}

func (s *Store) GetWorkspaces() ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if err := s.db.Order("created_at DESC, id DESC").Find(&workspaces).Error; err != nil {
		return nil, translate(err)
	}
	return workspaces, nil
}

func (s *Store) CreateWorkspace(input storage.CreateWorkspaceInput) (*models.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ws := models.Workspace{
		Name:        input.Name,
		Color:       input.Color,
		Description: input.Description,
	}
	if err := s.db.Create(&ws).Error; err != nil {
		return nil, translate(err)
	}
	return &ws, nil
}

func (s *Store) UpdateWorkspace(id uint64, input storage.UpdateWorkspaceInput) (*models.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var ws models.Workspace
	if err := s.db.First(&ws, id).Error; err != nil {
		return nil, translate(err)
	}

	if input.Name != nil {
		ws.Name = *input.Name
	}
	if input.Color != nil {
		ws.Color = *input.Color
	}
	if input.Description != nil {
		ws.Description = *input.Description
	}
	if err := s.db.Save(&ws).Error; err != nil {
		return nil, translate(err)
	}
	return &ws, nil
}

func (s *Store) DeleteWorkspace(id uint64) (bool, error) {
	result := s.db.Delete(&models.Workspace{}, id)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}
