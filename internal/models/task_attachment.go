package models

import "time"

type TaskAttachment struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	TaskID       uint64    `gorm:"not null;index" json:"task_id"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType     string    `gorm:"type:varchar(100);not null" json:"file_type"`
	FileSize     int64     `gorm:"not null" json:"file_size"`
	FileURL      string    `gorm:"type:text;not null" json:"file_url"`
	UploadedByID uint64    `gorm:"not null" json:"uploaded_by_id"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	Task       Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	UploadedBy User `gorm:"foreignKey:UploadedByID" json:"-"`
}
