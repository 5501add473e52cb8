package models

import "time"

type TeacherProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Specializations []Specialization `gorm:"many2many:teacher_profile_specializations;constraint:OnDelete:CASCADE;" json:"specializations"`
	LessonTopics    []LessonTopic    `gorm:"many2many:teacher_profile_lesson_topics;constraint:OnDelete:CASCADE;" json:"lesson_topics"`

	HourlyRate      float64 `gorm:"type:numeric(8,2);not null" json:"hourly_rate"`
	ExperienceYears int     `gorm:"not null" json:"experience_years"`
	About           string  `gorm:"type:text;not null" json:"about"`
	IsAvailable     bool    `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
