package models

import "time"

type LessonBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LessonRequestID uint          `gorm:"not null;index" json:"lesson_request_id"`
	LessonRequest   LessonRequest `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lesson_request"`

	TeacherID uint `gorm:"not null;index" json:"teacher_id"`
	Teacher   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"teacher"`

	TeacherAvailabilityID uint                `gorm:"not null;uniqueIndex" json:"teacher_availability_id"`
	TeacherAvailability   TeacherAvailability `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"teacher_availability"`

	Status string `gorm:"size:20;not null;default:'confirmed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
