package models

import (
	"time"

	"gorm.io/datatypes"
)

// A teacher may not offer the same date/time twice for one request.
type TeacherAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TeacherID uint `gorm:"not null;uniqueIndex:idx_availability_slot,priority:1" json:"teacher_id"`
	Teacher   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"teacher"`

	LessonRequestID uint          `gorm:"not null;uniqueIndex:idx_availability_slot,priority:2" json:"lesson_request_id"`
	LessonRequest   LessonRequest `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lesson_request"`

	AvailableDate datatypes.Date `gorm:"not null;uniqueIndex:idx_availability_slot,priority:3" json:"available_date"`
	AvailableTime datatypes.Time `gorm:"not null;uniqueIndex:idx_availability_slot,priority:4" json:"available_time"`
	Duration      int            `gorm:"not null" json:"duration"`
	IsAccepted    bool           `gorm:"not null;default:false" json:"is_accepted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StartsAt combines the proposed date and time in loc.
func (a *TeacherAvailability) StartsAt(loc *time.Location) time.Time {
	y, m, d := time.Time(a.AvailableDate).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(a.AvailableTime))
}

func (a *TeacherAvailability) EndsAt(loc *time.Location) time.Time {
	return a.StartsAt(loc).Add(time.Duration(a.Duration) * time.Minute)
}
