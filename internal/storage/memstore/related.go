package memstore

import (
	"sort"
	"time"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// AssignUserToTask links a user to a task. Assigning an already-assigned
// user returns the existing link, keeping the (task, user) pair unique.
func (s *Store) AssignUserToTask(taskID, userID uint64) (*models.TaskAssignee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[taskID]; !ok {
		return nil, &storage.ValidationError{Field: "task_id", Reason: "task does not exist"}
	}
	if _, ok := s.users[userID]; !ok {
		return nil, &storage.ValidationError{Field: "user_id", Reason: "user does not exist"}
	}

	for _, existing := range s.assignees {
		if existing.TaskID == taskID && existing.UserID == userID {
			e := existing
			return &e, nil
		}
	}

	assignee := models.TaskAssignee{
		ID:     s.nextAssigneeID,
		TaskID: taskID,
		UserID: userID,
	}
	s.nextAssigneeID++
	s.assignees[assignee.ID] = assignee
	return &assignee, nil
}

func (s *Store) RemoveUserFromTask(taskID, userID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.assignees {
		if a.TaskID == taskID && a.UserID == userID {
			delete(s.assignees, id)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetTaskAssignees(taskID uint64) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assignedUsers(taskID), nil
}

// assignedUsers resolves a task's assignee links to users. Callers must hold
// at least a read lock.
func (s *Store) assignedUsers(taskID uint64) []models.User {
	links := make([]models.TaskAssignee, 0)
	for _, a := range s.assignees {
		if a.TaskID == taskID {
			links = append(links, a)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })

	users := make([]models.User, 0, len(links))
	for _, link := range links {
		if user, ok := s.users[link.UserID]; ok {
			users = append(users, user)
		}
	}
	return users
}

func (s *Store) AddTaskAttachment(input storage.CreateTaskAttachmentInput) (*models.TaskAttachment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[input.TaskID]; !ok {
		return nil, &storage.ValidationError{Field: "task_id", Reason: "task does not exist"}
	}
	if _, ok := s.users[input.UploadedByID]; !ok {
		return nil, &storage.ValidationError{Field: "uploaded_by_id", Reason: "user does not exist"}
	}

	attachment := models.TaskAttachment{
		ID:           s.nextAttachmentID,
		TaskID:       input.TaskID,
		FileName:     input.FileName,
		FileType:     input.FileType,
		FileSize:     input.FileSize,
		FileURL:      input.FileURL,
		UploadedByID: input.UploadedByID,
		UploadedAt:   time.Now(),
	}
	s.nextAttachmentID++
	s.attachments[attachment.ID] = attachment
	return &attachment, nil
}

func (s *Store) GetTaskAttachments(taskID uint64) ([]models.TaskAttachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskAttachments(taskID), nil
}

func (s *Store) taskAttachments(taskID uint64) []models.TaskAttachment {
	attachments := make([]models.TaskAttachment, 0)
	for _, a := range s.attachments {
		if a.TaskID == taskID {
			attachments = append(attachments, a)
		}
	}
	sort.Slice(attachments, func(i, j int) bool {
		if !attachments[i].UploadedAt.Equal(attachments[j].UploadedAt) {
			return attachments[i].UploadedAt.After(attachments[j].UploadedAt)
		}
		return attachments[i].ID > attachments[j].ID
	})
	return attachments
}

func (s *Store) DeleteTaskAttachment(id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attachments[id]; !ok {
		return false, nil
	}
	delete(s.attachments, id)
	return true, nil
}

func (s *Store) AddVoiceNote(input storage.CreateVoiceNoteInput) (*models.VoiceNote, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[input.TaskID]; !ok {
		return nil, &storage.ValidationError{Field: "task_id", Reason: "task does not exist"}
	}
	if _, ok := s.users[input.RecordedByID]; !ok {
		return nil, &storage.ValidationError{Field: "recorded_by_id", Reason: "user does not exist"}
	}

	note := models.VoiceNote{
		ID:           s.nextVoiceNoteID,
		TaskID:       input.TaskID,
		FileName:     input.FileName,
		FileSize:     input.FileSize,
		Duration:     input.Duration,
		FileURL:      input.FileURL,
		RecordedByID: input.RecordedByID,
		RecordedAt:   time.Now(),
	}
	s.nextVoiceNoteID++
	s.voiceNotes[note.ID] = note
	return &note, nil
}

func (s *Store) GetVoiceNotes(taskID uint64) ([]models.VoiceNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskVoiceNotes(taskID), nil
}

func (s *Store) taskVoiceNotes(taskID uint64) []models.VoiceNote {
	notes := make([]models.VoiceNote, 0)
	for _, v := range s.voiceNotes {
		if v.TaskID == taskID {
			notes = append(notes, v)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].RecordedAt.Equal(notes[j].RecordedAt) {
			return notes[i].RecordedAt.After(notes[j].RecordedAt)
		}
		return notes[i].ID > notes[j].ID
	})
	return notes
}

func (s *Store) DeleteVoiceNote(id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.voiceNotes[id]; !ok {
		return false, nil
	}
	delete(s.voiceNotes, id)
	return true, nil
}

func (s *Store) AddComment(input storage.CreateCommentInput) (*models.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[input.TaskID]; !ok {
		return nil, &storage.ValidationError{Field: "task_id", Reason: "task does not exist"}
	}
	if _, ok := s.users[input.UserID]; !ok {
		return nil, &storage.ValidationError{Field: "user_id", Reason: "user does not exist"}
	}

	now := time.Now()
	comment := models.Comment{
		ID:        s.nextCommentID,
		TaskID:    input.TaskID,
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextCommentID++
	s.comments[comment.ID] = comment
	return &comment, nil
}

func (s *Store) GetComments(taskID uint64) ([]models.CommentWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskComments(taskID), nil
}

// taskComments joins each comment to its author, resolving every distinct
// user at most once per pass. Callers must hold at least a read lock.
func (s *Store) taskComments(taskID uint64) []models.CommentWithUser {
	comments := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.TaskID == taskID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})

	resolved := make(map[uint64]models.User)
	result := make([]models.CommentWithUser, 0, len(comments))
	for _, c := range comments {
		user, ok := resolved[c.UserID]
		if !ok {
			user, ok = s.users[c.UserID]
			if !ok {
				continue
			}
			resolved[c.UserID] = user
		}
		result = append(result, models.CommentWithUser{Comment: c, User: user})
	}
	return result
}

func (s *Store) DeleteComment(id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}
