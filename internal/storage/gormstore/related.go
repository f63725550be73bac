package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// AssignUserToTask links a user to a task. The (task, user) pair is unique;
// repeated assignment returns the existing link.
func (s *Store) AssignUserToTask(taskID, userID uint64) (*models.TaskAssignee, error) {
	if ok, err := s.exists(&models.Task{}, taskID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &storage.ValidationError{Field: "task_id", Reason: "task does not exist"}
	}
	if ok, err := s.exists(&models.User{}, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &storage.ValidationError{Field: "user_id", Reason: "user does not exist"}
	}

	var existing models.TaskAssignee
	err := s.db.Where("task_id = ? AND user_id = ?", taskID, userID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err)
	}

	assignee := models.TaskAssignee{TaskID: taskID, UserID: userID}
	if err := s.db.Create(&assignee).Error; err != nil {
		// Lost a race with a concurrent assignment of the same pair.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("task_id = ? AND user_id = ?", taskID, userID).First(&existing).Error; err != nil {
				return nil, translate(err)
			}
			return &existing, nil
		}
		return nil, translate(err)
	}
	return &assignee, nil
}

func (s *Store) RemoveUserFromTask(taskID, userID uint64) (bool, error) {
	result := s.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskAssignee{})
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *Store) GetTaskAssignees(taskID uint64) ([]models.User, error) {
	var users []models.User
	err := s.db.Model(&models.User{}).
		Joins("JOIN task_assignees ON task_assignees.user_id = users.id").
		Where("task_assignees.task_id = ?", taskID).
		Order("task_assignees.id").
		Find(&users).Error
	if err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (s *Store) AddTaskAttachment(input storage.CreateTaskAttachmentInput) (*models.TaskAttachment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if ok, err := s.exists(&models.Task{}, input.TaskID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &storage.ValidationError{Field: "task_id", Reason: "task does not exist"}
	}
	if ok, err := s.exists(&models.User{}, input.UploadedByID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &storage.ValidationError{Field: "uploaded_by_id", Reason: "user does not exist"}
	}

	attachment := models.TaskAttachment{
		TaskID:       input.TaskID,
		FileName:     input.FileName,
		FileType:     input.FileType,
		FileSize:     input.FileSize,
		FileURL:      input.FileURL,
		UploadedByID: input.UploadedByID,
	}
	if err := s.db.Create(&attachment).Error; err != nil {
		return nil, translate(err)
	}
	return &attachment, nil
}

func (s *Store) GetTaskAttachments(taskID uint64) ([]models.TaskAttachment, error) {
	var attachments []models.TaskAttachment
	err := s.db.Where("task_id = ?", taskID).
		Order("uploaded_at DESC, id DESC").
		Find(&attachments).Error
	if err != nil {
		return nil, translate(err)
	}
	return attachments, nil
}

func (s *Store) DeleteTaskAttachment(id uint64) (bool, error) {
	result := s.db.Delete(&models.TaskAttachment{}, id)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *Store) AddVoiceNote(input storage.CreateVoiceNoteInput) (*models.VoiceNote, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if ok, err := s.exists(&models.Task{}, input.TaskID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &storage.ValidationError{Field: "task_id", Reason: "task does not exist"}
	}
	if ok, err := s.exists(&models.User{}, input.RecordedByID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &storage.ValidationError{Field: "recorded_by_id", Reason: "user does not exist"}
	}

	note := models.VoiceNote{
		TaskID:       input.TaskID,
		FileName:     input.FileName,
		FileSize:     input.FileSize,
		Duration:     input.Duration,
		FileURL:      input.FileURL,
		RecordedByID: input.RecordedByID,
	}
	if err := s.db.Create(&note).Error; err != nil {
		return nil, translate(err)
	}
	return &note, nil
}

func (s *Store) GetVoiceNotes(taskID uint64) ([]models.VoiceNote, error) {
	var notes []models.VoiceNote
	err := s.db.Where("task_id = ?", taskID).
		Order("recorded_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, translate(err)
	}
	return notes, nil
}

func (s *Store) DeleteVoiceNote(id uint64) (bool, error) {
	result := s.db.Delete(&models.VoiceNote{}, id)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *Store) AddComment(input storage.CreateCommentInput) (*models.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if ok, err := s.exists(&models.Task{}, input.TaskID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &storage.ValidationError{Field: "task_id", Reason: "task does not exist"}
	}
	if ok, err := s.exists(&models.User{}, input.UserID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &storage.ValidationError{Field: "user_id", Reason: "user does not exist"}
	}

	comment := models.Comment{
		TaskID:  input.TaskID,
		UserID:  input.UserID,
		Content: input.Content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

// GetComments returns a task's comments joined with their authors. Authors
// are fetched once per distinct user id in a single IN query.
func (s *Store) GetComments(taskID uint64) ([]models.CommentWithUser, error) {
	var comments []models.Comment
	err := s.db.Where("task_id = ?", taskID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, translate(err)
	}

	userIDs := make([]uint64, 0, len(comments))
	seen := make(map[uint64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		userIDs = append(userIDs, c.UserID)
	}

	usersByID := make(map[uint64]models.User, len(userIDs))
	if len(userIDs) > 0 {
		var users []models.User
		if err := s.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return nil, translate(err)
		}
		for _, u := range users {
			usersByID[u.ID] = u
		}
	}

	result := make([]models.CommentWithUser, 0, len(comments))
	for _, c := range comments {
		user, ok := usersByID[c.UserID]
		if !ok {
			continue
		}
		result = append(result, models.CommentWithUser{Comment: c, User: user})
	}
	return result, nil
}

func (s *Store) DeleteComment(id uint64) (bool, error) {
	result := s.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}
