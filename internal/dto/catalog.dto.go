package dto

import "github.com/Lukas18007/dyschool/internal/models"

// TopicOptionDTO feeds the dependent topic dropdown.
type TopicOptionDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ToTopicOptions(topics []models.LessonTopic) []TopicOptionDTO {
	out := make([]TopicOptionDTO, 0, len(topics))
	for _, t := range topics {
		out = append(out, TopicOptionDTO{ID: t.ID, Name: t.Name})
	}
	return out
}

type LessonTopicDTO struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	SpecializationID uint   `json:"specialization_id"`
	Specialization   string `json:"specialization,omitempty"`
}

func ToLessonTopicDTO(t *models.LessonTopic) LessonTopicDTO {
	return LessonTopicDTO{
		ID:               t.ID,
		Name:             t.Name,
		SpecializationID: t.SpecializationID,
		Specialization:   t.Specialization.Name,
	}
}

func ToLessonTopicDTOs(topics []models.LessonTopic) []LessonTopicDTO {
	out := make([]LessonTopicDTO, 0, len(topics))
	for i := range topics {
		out = append(out, ToLessonTopicDTO(&topics[i]))
	}
	return out
}

type SpecializationDTO struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Topics      []TopicOptionDTO `json:"topics"`
}

func ToSpecializationDTOs(specs []models.Specialization) []SpecializationDTO {
	out := make([]SpecializationDTO, 0, len(specs))
	for _, s := range specs {
		out = append(out, SpecializationDTO{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Topics:      ToTopicOptions(s.Topics),
		})
	}
	return out
}
