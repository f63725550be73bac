// Package storage defines the data-access contract shared by every backend.
//
// Two implementations exist: memstore (in-process maps, used for development
// and tests) and gormstore (relational, used in production). Callers are
// backend-agnostic; the backend is selected once at process start and
// injected into whatever consumes it.
//
// Contract semantics, identical across backends:
//   - Point lookups return ErrNotFound when the id is absent.
//   - Creates assign the id and creation timestamp server-side.
//   - Updates merge the provided fields onto the existing record.
//   - Deletes are idempotent and report whether a record was removed.
//   - List operations order by creation time descending (newest first),
//     breaking ties by id descending.
//   - Deleting a task cascades to its assignees, attachments, voice notes
//     and comments.
package storage

import "github.com/workflowhq/workflow-api/internal/models"

// Store is the entity-store contract implemented by every backend.
type Store interface {
	// Users
	GetUser(id uint64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUsers() ([]models.User, error)
	CreateUser(input CreateUserInput) (*models.User, error)

	// Workspaces
	GetWorkspace(id uint64) (*models.Workspace, error)
	GetWorkspaces() ([]models.Workspace, error)
	CreateWorkspace(input CreateWorkspaceInput) (*models.Workspace, error)
	UpdateWorkspace(id uint64, input UpdateWorkspaceInput) (*models.Workspace, error)
	DeleteWorkspace(id uint64) (bool, error)

	// Tasks
	GetTask(id uint64) (*models.Task, error)
	GetTaskWithRelations(id uint64) (*models.TaskWithRelations, error)
	GetTasks() ([]models.Task, error)
	GetTasksByWorkspace(workspaceID uint64) ([]models.Task, error)
	GetTasksByUser(userID uint64) ([]models.Task, error)
	GetTasksByStatus(status models.TaskStatus) ([]models.Task, error)
	GetTodayTasks() ([]models.Task, error)
	GetUpcomingTasks() ([]models.Task, error)
	CreateTask(input CreateTaskInput) (*models.Task, error)
	UpdateTask(id uint64, input UpdateTaskInput) (*models.Task, error)
	DeleteTask(id uint64) (bool, error)

	// Task assignees
	AssignUserToTask(taskID, userID uint64) (*models.TaskAssignee, error)
	RemoveUserFromTask(taskID, userID uint64) (bool, error)
	GetTaskAssignees(taskID uint64) ([]models.User, error)

	// Attachments
	AddTaskAttachment(input CreateTaskAttachmentInput) (*models.TaskAttachment, error)
	GetTaskAttachments(taskID uint64) ([]models.TaskAttachment, error)
	DeleteTaskAttachment(id uint64) (bool, error)

	// Voice notes
	AddVoiceNote(input CreateVoiceNoteInput) (*models.VoiceNote, error)
	GetVoiceNotes(taskID uint64) ([]models.VoiceNote, error)
	DeleteVoiceNote(id uint64) (bool, error)

	// Comments
	AddComment(input CreateCommentInput) (*models.Comment, error)
	GetComments(taskID uint64) ([]models.CommentWithUser, error)
	DeleteComment(id uint64) (bool, error)
}
