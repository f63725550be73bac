package memstore

import (
	"sort"
	"time"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// sortNewestFirst applies the canonical list ordering: creation time
// descending, id descending on ties.
func sortNewestFirst(tasks []models.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})
}

func (s *Store) GetTask(id uint64) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &task, nil
}

func (s *Store) GetTasks() ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasks(func(models.Task) bool { return true }), nil
}

func (s *Store) GetTasksByWorkspace(workspaceID uint64) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasks(func(t models.Task) bool { return t.WorkspaceID == workspaceID }), nil
}

// GetTasksByUser returns tasks the user is assigned to or created.
func (s *Store) GetTasksByUser(userID uint64) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assigned := make(map[uint64]struct{})
	for _, a := range s.assignees {
		if a.UserID == userID {
			assigned[a.TaskID] = struct{}{}
		}
	}

	return s.filterTasks(func(t models.Task) bool {
		if t.CreatedByID == userID {
			return true
		}
		_, ok := assigned[t.ID]
		return ok
	}), nil
}

func (s *Store) GetTasksByStatus(status models.TaskStatus) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasks(func(t models.Task) bool { return t.Status == status }), nil
}

// GetTodayTasks returns tasks whose start date falls within today, local
// time. Tasks without a start date are excluded.
func (s *Store) GetTodayTasks() ([]models.Task, error) {
	from, to := storage.TodayWindow(time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasks(func(t models.Task) bool {
		return t.StartDate != nil && !t.StartDate.Before(from) && t.StartDate.Before(to)
	}), nil
}

// GetUpcomingTasks returns tasks starting strictly after today, up to seven
// days ahead. Disjoint from GetTodayTasks by construction.
func (s *Store) GetUpcomingTasks() ([]models.Task, error) {
	from, to := storage.UpcomingWindow(time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasks(func(t models.Task) bool {
		return t.StartDate != nil && !t.StartDate.Before(from) && t.StartDate.Before(to)
	}), nil
}

// filterTasks collects matching tasks in canonical order. Callers must hold
// at least a read lock.
func (s *Store) filterTasks(keep func(models.Task) bool) []models.Task {
	tasks := make([]models.Task, 0)
	for _, t := range s.tasks {
		if keep(t) {
			tasks = append(tasks, t)
		}
	}
	sortNewestFirst(tasks)
	return tasks
}

func (s *Store) CreateTask(input storage.CreateTaskInput) (*models.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workspaces[input.WorkspaceID]; !ok {
		return nil, &storage.ValidationError{Field: "workspace_id", Reason: "workspace does not exist"}
	}
	if _, ok := s.users[input.CreatedByID]; !ok {
		return nil, &storage.ValidationError{Field: "created_by_id", Reason: "user does not exist"}
	}

	status := input.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	now := time.Now()
	task := models.Task{
		ID:          s.nextTaskID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		WorkspaceID: input.WorkspaceID,
		CreatedByID: input.CreatedByID,
		TotalBudget: input.TotalBudget,
		PaidAmount:  input.PaidAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextTaskID++
	s.tasks[task.ID] = task
	return &task, nil
}

func (s *Store) UpdateTask(id uint64, input storage.UpdateTaskInput) (*models.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if input.WorkspaceID != nil {
		if _, ok := s.workspaces[*input.WorkspaceID]; !ok {
			return nil, &storage.ValidationError{Field: "workspace_id", Reason: "workspace does not exist"}
		}
	}

	input.Apply(&task)
	task.UpdatedAt = time.Now()
	s.tasks[id] = task
	return &task, nil
}

// DeleteTask removes the task and cascades to its assignees, attachments,
// voice notes and comments.
func (s *Store) DeleteTask(id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)

	for assigneeID, a := range s.assignees {
		if a.TaskID == id {
			delete(s.assignees, assigneeID)
		}
	}
	for attachmentID, a := range s.attachments {
		if a.TaskID == id {
			delete(s.attachments, attachmentID)
		}
	}
	for noteID, v := range s.voiceNotes {
		if v.TaskID == id {
			delete(s.voiceNotes, noteID)
		}
	}
	for commentID, c := range s.comments {
		if c.TaskID == id {
			delete(s.comments, commentID)
		}
	}
	return true, nil
}

// GetTaskWithRelations assembles the task aggregate in a single pass under
// the read lock. Related collections default to empty slices when the task
// has no related rows.
func (s *Store) GetTaskWithRelations(id uint64) (*models.TaskWithRelations, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	result := models.TaskWithRelations{
		Task:        task,
		Assignees:   s.assignedUsers(id),
		Attachments: s.taskAttachments(id),
		VoiceNotes:  s.taskVoiceNotes(id),
		Comments:    s.taskComments(id),
	}
	if ws, ok := s.workspaces[task.WorkspaceID]; ok {
		result.Workspace = &ws
	}
	if creator, ok := s.users[task.CreatedByID]; ok {
		result.CreatedBy = &creator
	}
	return &result, nil
}
