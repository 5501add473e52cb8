package dto

import (
	"time"

	"github.com/Lukas18007/dyschool/internal/models"
)

type TeacherProfileDTO struct {
	ID              uint             `json:"id"`
	UserID          uint             `json:"user_id"`
	Specializations []TopicOptionDTO `json:"specializations"`
	LessonTopics    []LessonTopicDTO `json:"lesson_topics"`
	HourlyRate      float64          `json:"hourly_rate"`
	ExperienceYears int              `json:"experience_years"`
	About           string           `json:"about"`
	IsAvailable     bool             `json:"is_available"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func ToTeacherProfileDTO(p *models.TeacherProfile) *TeacherProfileDTO {
	if p == nil {
		return nil
	}

	specs := make([]TopicOptionDTO, 0, len(p.Specializations))
	for _, s := range p.Specializations {
		specs = append(specs, TopicOptionDTO{ID: s.ID, Name: s.Name})
	}

	return &TeacherProfileDTO{
		ID:              p.ID,
		UserID:          p.UserID,
		Specializations: specs,
		LessonTopics:    ToLessonTopicDTOs(p.LessonTopics),
		HourlyRate:      p.HourlyRate,
		ExperienceYears: p.ExperienceYears,
		About:           p.About,
		IsAvailable:     p.IsAvailable,
		UpdatedAt:       p.UpdatedAt,
	}
}

type LessonRequestDTO struct {
	ID              uint           `json:"id"`
	Student         *PersonDTO     `json:"student,omitempty"`
	LessonTopic     LessonTopicDTO `json:"lesson_topic"`
	LessonDuration  int            `json:"lesson_duration"`
	MaxHourlyRate   float64        `json:"max_hourly_rate"`
	AdditionalNotes string         `json:"additional_notes"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

func ToLessonRequestDTO(r *models.LessonRequest) LessonRequestDTO {
	out := LessonRequestDTO{
		ID:              r.ID,
		LessonTopic:     ToLessonTopicDTO(&r.LessonTopic),
		LessonDuration:  r.LessonDuration,
		MaxHourlyRate:   r.MaxHourlyRate,
		AdditionalNotes: r.AdditionalNotes,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
	}
	if r.Student.ID != 0 {
		p := ToPersonDTO(&r.Student)
		out.Student = &p
	}
	return out
}

func ToLessonRequestDTOs(list []models.LessonRequest) []LessonRequestDTO {
	out := make([]LessonRequestDTO, 0, len(list))
	for i := range list {
		out = append(out, ToLessonRequestDTO(&list[i]))
	}
	return out
}

type AvailabilityDTO struct {
	ID              uint       `json:"id"`
	Teacher         *PersonDTO `json:"teacher,omitempty"`
	TeacherID       uint       `json:"teacher_id"`
	LessonRequestID uint       `json:"lesson_request_id"`
	LessonTopic     string     `json:"lesson_topic,omitempty"`
	AvailableDate   string     `json:"available_date"`
	AvailableTime   string     `json:"available_time"`
	Duration        int        `json:"duration"`
	IsAccepted      bool       `json:"is_accepted"`
	CreatedAt       time.Time  `json:"created_at"`
}

// FormatSlot renders the stored date and time as YYYY-MM-DD and HH:MM.
func FormatSlot(a *models.TeacherAvailability) (string, string) {
	d := time.Time(a.AvailableDate).Format("2006-01-02")
	t := time.Duration(a.AvailableTime)
	clock := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(t).Format("15:04")
	return d, clock
}

func ToAvailabilityDTO(a *models.TeacherAvailability) AvailabilityDTO {
	date, clock := FormatSlot(a)
	out := AvailabilityDTO{
		ID:              a.ID,
		TeacherID:       a.TeacherID,
		LessonRequestID: a.LessonRequestID,
		LessonTopic:     a.LessonRequest.LessonTopic.Name,
		AvailableDate:   date,
		AvailableTime:   clock,
		Duration:        a.Duration,
		IsAccepted:      a.IsAccepted,
		CreatedAt:       a.CreatedAt,
	}
	if a.Teacher.ID != 0 {
		p := ToPersonDTO(&a.Teacher)
		out.Teacher = &p
	}
	return out
}

func ToAvailabilityDTOs(list []models.TeacherAvailability) []AvailabilityDTO {
	out := make([]AvailabilityDTO, 0, len(list))
	for i := range list {
		out = append(out, ToAvailabilityDTO(&list[i]))
	}
	return out
}

type BookingDTO struct {
	ID                    uint       `json:"id"`
	LessonRequestID       uint       `json:"lesson_request_id"`
	TeacherAvailabilityID uint       `json:"teacher_availability_id"`
	TeacherID             uint       `json:"teacher_id"`
	Teacher               *PersonDTO `json:"teacher,omitempty"`
	Student               *PersonDTO `json:"student,omitempty"`
	LessonTopic           string     `json:"lesson_topic,omitempty"`
	Date                  string     `json:"date,omitempty"`
	Time                  string     `json:"time,omitempty"`
	Duration              int        `json:"duration,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
}

func ToBookingDTO(b *models.LessonBooking) BookingDTO {
	out := BookingDTO{
		ID:                    b.ID,
		LessonRequestID:       b.LessonRequestID,
		TeacherAvailabilityID: b.TeacherAvailabilityID,
		TeacherID:             b.TeacherID,
		LessonTopic:           b.LessonRequest.LessonTopic.Name,
		Status:                b.Status,
		CreatedAt:             b.CreatedAt,
	}
	if b.Teacher.ID != 0 {
		p := ToPersonDTO(&b.Teacher)
		out.Teacher = &p
	}
	if b.LessonRequest.Student.ID != 0 {
		p := ToPersonDTO(&b.LessonRequest.Student)
		out.Student = &p
	}
	if b.TeacherAvailability.ID != 0 {
		out.Date, out.Time = FormatSlot(&b.TeacherAvailability)
		out.Duration = b.TeacherAvailability.Duration
	}
	return out
}

func ToBookingDTOs(list []models.LessonBooking) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for i := range list {
		out = append(out, ToBookingDTO(&list[i]))
	}
	return out
}
