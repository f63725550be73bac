package models

// TaskAssignee links a user to a task. The (task_id, user_id) pair is unique;
// assigning the same user twice is a no-op.
type TaskAssignee struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	TaskID uint64 `gorm:"not null;uniqueIndex:idx_task_assignees_task_user" json:"task_id"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_task_assignees_task_user" json:"user_id"`

	Task Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
