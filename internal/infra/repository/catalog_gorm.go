package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/domain/catalog"
	"github.com/Lukas18007/dyschool/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *CatalogGormRepository) ListSpecializations(
	ctx context.Context,
) ([]models.Specialization, error) {

	var specs []models.Specialization
	if err := r.db.WithContext(ctx).
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Order("name ASC").
		Find(&specs).Error; err != nil {
		return nil, err
	}
	return specs, nil
}

func (r *CatalogGormRepository) ListTopicsBySpecialization(
	ctx context.Context,
	specializationID uint,
) ([]models.LessonTopic, error) {

	var topics []models.LessonTopic
	if err := r.db.WithContext(ctx).
		Where("specialization_id = ?", specializationID).
		Order("name ASC").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *CatalogGormRepository) GetTopic(
	ctx context.Context,
	id uint,
) (*models.LessonTopic, error) {

	var topic models.LessonTopic
	if err := r.db.WithContext(ctx).
		Preload("Specialization").
		First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *CatalogGormRepository) FindSpecializations(
	ctx context.Context,
	ids []uint,
) ([]models.Specialization, error) {

	var specs []models.Specialization
	if len(ids) == 0 {
		return specs, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&specs).Error; err != nil {
		return nil, err
	}
	return specs, nil
}

func (r *CatalogGormRepository) FindTopics(
	ctx context.Context,
	ids []uint,
) ([]models.LessonTopic, error) {

	var topics []models.LessonTopic
	if len(ids) == 0 {
		return topics, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *CatalogGormRepository) ListTopicsWithTeachers(
	ctx context.Context,
) ([]models.LessonTopic, error) {

	declared := r.db.
		Table("teacher_profile_lesson_topics").
		Select("lesson_topic_id")

	var topics []models.LessonTopic
	if err := r.db.WithContext(ctx).
		Preload("Specialization").
		Where("id IN (?)", declared).
		Order("name ASC").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// --------------------------------------------------
// Seed
// --------------------------------------------------

func (r *CatalogGormRepository) GetOrCreateSpecialization(
	ctx context.Context,
	name string,
	description string,
) (*models.Specialization, bool, error) {

	var spec models.Specialization
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&spec).Error
	if err == nil {
		return &spec, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	spec = models.Specialization{Name: name, Description: description}
	if err := r.db.WithContext(ctx).Create(&spec).Error; err != nil {
		return nil, false, err
	}
	return &spec, true, nil
}

func (r *CatalogGormRepository) GetOrCreateTopic(
	ctx context.Context,
	specializationID uint,
	name string,
	description string,
) (*models.LessonTopic, bool, error) {

	var topic models.LessonTopic
	err := r.db.WithContext(ctx).
		Where("specialization_id = ? AND name = ?", specializationID, name).
		First(&topic).Error
	if err == nil {
		return &topic, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	topic = models.LessonTopic{
		SpecializationID: specializationID,
		Name:             name,
		Description:      description,
	}
	if err := r.db.WithContext(ctx).Create(&topic).Error; err != nil {
		return nil, false, err
	}
	return &topic, true, nil
}
