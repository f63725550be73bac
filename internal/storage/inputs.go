package storage

import (
	"strings"
	"time"

	"github.com/workflowhq/workflow-api/internal/models"
)

// CreateUserInput represents input for creating a user.
type CreateUserInput struct {
	Username  string
	Password  string
	FullName  string
	Email     string
	AvatarURL string
}

// Validate checks the input. Both backends call this before inserting.
func (in CreateUserInput) Validate() error {
	if strings.TrimSpace(in.Username) == "" {
		return invalid("username", "is required")
	}
	if in.Password == "" {
		return invalid("password", "is required")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return invalid("full_name", "is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return invalid("email", "is required")
	}
	return nil
}

// CreateWorkspaceInput represents input for creating a workspace.
type CreateWorkspaceInput struct {
	Name        string
	Color       string
	Description string
}

func (in CreateWorkspaceInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "is required")
	}
	if strings.TrimSpace(in.Color) == "" {
		return invalid("color", "is required")
	}
	return nil
}

// UpdateWorkspaceInput carries the fields to merge onto a workspace.
// Nil fields retain their prior value.
type UpdateWorkspaceInput struct {
	Name        *string
	Color       *string
	Description *string
}

func (in UpdateWorkspaceInput) Validate() error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return invalid("name", "cannot be empty")
	}
	if in.Color != nil && strings.TrimSpace(*in.Color) == "" {
		return invalid("color", "cannot be empty")
	}
	return nil
}

// CreateTaskInput represents input for creating a task. Status and Priority
// default to to-do and medium when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	StartDate   *time.Time
	EndDate     *time.Time
	WorkspaceID uint64
	CreatedByID uint64
	TotalBudget float64
	PaidAmount  float64
}

func (in CreateTaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return invalid("status", "unknown value "+string(in.Status))
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return invalid("priority", "unknown value "+string(in.Priority))
	}
	if in.WorkspaceID == 0 {
		return invalid("workspace_id", "is required")
	}
	if in.CreatedByID == 0 {
		return invalid("created_by_id", "is required")
	}
	if in.TotalBudget < 0 {
		return invalid("total_budget", "must not be negative")
	}
	if in.PaidAmount < 0 {
		return invalid("paid_amount", "must not be negative")
	}
	return nil
}

// UpdateTaskInput carries the fields to merge onto a task. Nil fields retain
// their prior value; the Clear* flags set nullable fields back to null.
type UpdateTaskInput struct {
	Title            *string
	Description      *string
	Status           *models.TaskStatus
	Priority         *models.TaskPriority
	StartDate        *time.Time
	ClearStartDate   bool
	EndDate          *time.Time
	ClearEndDate     bool
	WorkspaceID      *uint64
	TotalBudget      *float64
	PaidAmount       *float64
	CompletedAt      *time.Time
	ClearCompletedAt bool
}

func (in UpdateTaskInput) Validate() error {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return invalid("title", "cannot be empty")
	}
	if in.Status != nil && !in.Status.Valid() {
		return invalid("status", "unknown value "+string(*in.Status))
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return invalid("priority", "unknown value "+string(*in.Priority))
	}
	if in.WorkspaceID != nil && *in.WorkspaceID == 0 {
		return invalid("workspace_id", "cannot be zero")
	}
	if in.TotalBudget != nil && *in.TotalBudget < 0 {
		return invalid("total_budget", "must not be negative")
	}
	if in.PaidAmount != nil && *in.PaidAmount < 0 {
		return invalid("paid_amount", "must not be negative")
	}
	return nil
}

// Apply merges the input onto task.
func (in UpdateTaskInput) Apply(task *models.Task) {
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.ClearStartDate {
		task.StartDate = nil
	} else if in.StartDate != nil {
		task.StartDate = in.StartDate
	}
	if in.ClearEndDate {
		task.EndDate = nil
	} else if in.EndDate != nil {
		task.EndDate = in.EndDate
	}
	if in.WorkspaceID != nil {
		task.WorkspaceID = *in.WorkspaceID
	}
	if in.TotalBudget != nil {
		task.TotalBudget = *in.TotalBudget
	}
	if in.PaidAmount != nil {
		task.PaidAmount = *in.PaidAmount
	}
	if in.ClearCompletedAt {
		task.CompletedAt = nil
	} else if in.CompletedAt != nil {
		task.CompletedAt = in.CompletedAt
	}
}

// CreateTaskAttachmentInput represents input for attaching a file to a task.
type CreateTaskAttachmentInput struct {
	TaskID       uint64
	FileName     string
	FileType     string
	FileSize     int64
	FileURL      string
	UploadedByID uint64
}

func (in CreateTaskAttachmentInput) Validate() error {
	if in.TaskID == 0 {
		return invalid("task_id", "is required")
	}
	if strings.TrimSpace(in.FileName) == "" {
		return invalid("file_name", "is required")
	}
	if strings.TrimSpace(in.FileType) == "" {
		return invalid("file_type", "is required")
	}
	if in.FileSize < 0 {
		return invalid("file_size", "must not be negative")
	}
	if strings.TrimSpace(in.FileURL) == "" {
		return invalid("file_url", "is required")
	}
	if in.UploadedByID == 0 {
		return invalid("uploaded_by_id", "is required")
	}
	return nil
}

// CreateVoiceNoteInput represents input for recording a voice note on a task.
type CreateVoiceNoteInput struct {
	TaskID       uint64
	FileName     string
	FileSize     int64
	Duration     int
	FileURL      string
	RecordedByID uint64
}

func (in CreateVoiceNoteInput) Validate() error {
	if in.TaskID == 0 {
		return invalid("task_id", "is required")
	}
	if strings.TrimSpace(in.FileName) == "" {
		return invalid("file_name", "is required")
	}
	if in.FileSize < 0 {
		return invalid("file_size", "must not be negative")
	}
	if in.Duration < 0 {
		return invalid("duration", "must not be negative")
	}
	if strings.TrimSpace(in.FileURL) == "" {
		return invalid("file_url", "is required")
	}
	if in.RecordedByID == 0 {
		return invalid("recorded_by_id", "is required")
	}
	return nil
}

// CreateCommentInput represents input for commenting on a task.
type CreateCommentInput struct {
	TaskID  uint64
	UserID  uint64
	Content string
}

func (in CreateCommentInput) Validate() error {
	if in.TaskID == 0 {
		return invalid("task_id", "is required")
	}
	if in.UserID == 0 {
		return invalid("user_id", "is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return invalid("content", "is required")
	}
	return nil
}

// TodayWindow returns the half-open interval [today 00:00, tomorrow 00:00)
// in local time. Tasks whose start date falls inside it are "today's" tasks.
func TodayWindow(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}

// UpcomingWindow returns the half-open interval [tomorrow 00:00,
// today+8d 00:00): strictly after today, up to seven days ahead. It never
// overlaps the today window.
func UpcomingWindow(now time.Time) (from, to time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start.AddDate(0, 0, 1), start.AddDate(0, 0, 8)
}
