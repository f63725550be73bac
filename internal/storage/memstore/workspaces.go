package memstore

import (
	"sort"
	"time"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

func (s *Store) GetWorkspace(id uint64) (*models.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.workspaces[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &ws, nil
}

func (s *Store) GetWorkspaces() ([]models.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workspaces := make([]models.Workspace, 0, len(s.workspaces))
	for _, ws := range s.workspaces {
		workspaces = append(workspaces, ws)
	}
	sort.Slice(workspaces, func(i, j int) bool {
		if !workspaces[i].CreatedAt.Equal(workspaces[j].CreatedAt) {
			return workspaces[i].CreatedAt.After(workspaces[j].CreatedAt)
		}
		return workspaces[i].ID > workspaces[j].ID
	})
	return workspaces, nil
}

func (s *Store) CreateWorkspace(input storage.CreateWorkspaceInput) (*models.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := models.Workspace{
		ID:          s.nextWorkspaceID,
		Name:        input.Name,
		Color:       input.Color,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	s.nextWorkspaceID++
	s.workspaces[ws.ID] = ws
	return &ws, nil
}

func (s *Store) UpdateWorkspace(id uint64, input storage.UpdateWorkspaceInput) (*models.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.workspaces[id]
	if !ok {
		return nil, storage.ErrNotFound
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
	s.workspaces[id] = ws
	return &ws, nil
}

func (s *Store) DeleteWorkspace(id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workspaces[id]; !ok {
		return false, nil
	}
	delete(s.workspaces, id)
	return true, nil
}
