package models

import "time"

type VoiceNote struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	TaskID       uint64    `gorm:"not null;index" json:"task_id"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize     int64     `gorm:"not null" json:"file_size"`
	Duration     int       `gorm:"not null" json:"duration"`
	FileURL      string    `gorm:"type:text;not null" json:"file_url"`
	RecordedByID uint64    `gorm:"not null" json:"recorded_by_id"`
	RecordedAt   time.Time `gorm:"autoCreateTime" json:"recorded_at"`

	Task       Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	RecordedBy User `gorm:"foreignKey:RecordedByID" json:"-"`
}
