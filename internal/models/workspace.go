package models

import "time"

// Workspace groups tasks into a named category, e.g. "Marketing".
type Workspace struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Color       string    `gorm:"type:varchar(50);not null" json:"color"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
