package models

import "time"

type Specialization struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Topics []LessonTopic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"topics,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type LessonTopic struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SpecializationID uint           `gorm:"not null;uniqueIndex:idx_topic_specialization_name" json:"specialization_id"`
	Specialization   Specialization `json:"specialization,omitempty"`

	Name        string `gorm:"size:100;not null;uniqueIndex:idx_topic_specialization_name" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
