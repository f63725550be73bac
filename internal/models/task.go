package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "to-do"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOnHold     TaskStatus = "on-hold"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOnHold, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Valid reports whether p is one of the known task priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'to-do'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	StartDate   *time.Time   `json:"start_date"`
	EndDate     *time.Time   `json:"end_date"`
	WorkspaceID uint64       `gorm:"not null;index" json:"workspace_id"`
	CreatedByID uint64       `gorm:"not null;index" json:"created_by_id"`
	TotalBudget float64      `gorm:"not null;default:0" json:"total_budget"`
	PaidAmount  float64      `gorm:"not null;default:0" json:"paid_amount"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	CompletedAt *time.Time   `json:"completed_at"`
}

// CommentWithUser is a comment joined with its authoring user.
type CommentWithUser struct {
	Comment
	User User `json:"user"`
}

// TaskWithRelations is the read-time aggregate of a task and everything
// attached to it. It is never persisted; both storage backends recompute it
// from the primitive entities on every request.
type TaskWithRelations struct {
	Task
	Assignees   []User            `json:"assignees"`
	Attachments []TaskAttachment  `json:"attachments"`
	VoiceNotes  []VoiceNote       `json:"voice_notes"`
	Comments    []CommentWithUser `json:"comments"`
	Workspace   *Workspace        `json:"workspace,omitempty"`
	CreatedBy   *User             `json:"created_by,omitempty"`
}
