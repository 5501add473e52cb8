package models

import "time"

type LessonRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudentID uint `gorm:"not null;index" json:"student_id"`
	Student   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student"`

	LessonTopicID uint        `gorm:"not null;index" json:"lesson_topic_id"`
	LessonTopic   LessonTopic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lesson_topic"`

	LessonDuration  int     `gorm:"not null" json:"lesson_duration"`
	MaxHourlyRate   float64 `gorm:"type:numeric(8,2);not null" json:"max_hourly_rate"`
	AdditionalNotes string  `gorm:"type:text" json:"additional_notes"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
