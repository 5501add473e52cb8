package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lukas18007/dyschool/internal/domain/teacher"
	"github.com/Lukas18007/dyschool/internal/models"
)

type TeacherGormRepository struct {
	db *gorm.DB
}

func NewTeacherGormRepository(db *gorm.DB) *TeacherGormRepository {
	return &TeacherGormRepository{db: db}
}

var _ teacher.Repository = (*TeacherGormRepository)(nil)

func (r *TeacherGormRepository) GetTeacher(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_type = ?", userID, models.UserTypeTeacher).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *TeacherGormRepository) GetProfileByUser(
	ctx context.Context,
	userID uint,
) (*models.TeacherProfile, error) {

	var p models.TeacherProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specializations", func(db *gorm.DB) *gorm.DB {
			return db.Order("specializations.id ASC")
		}).
		Preload("LessonTopics", func(db *gorm.DB) *gorm.DB {
			return db.Order("lesson_topics.id ASC")
		}).
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TeacherGormRepository) SaveProfile(
	ctx context.Context,
	profile *models.TeacherProfile,
	specializations []models.Specialization,
	topics []models.LessonTopic,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if profile.ID == 0 {
			if err := tx.Omit(clause.Associations).Create(profile).Error; err != nil {
				return err
			}
		}

		// Save writes zero values too, so is_available=false survives the column default.
		if err := tx.Omit(clause.Associations).Save(profile).Error; err != nil {
			return err
		}

		specs := tx.Model(profile).Association("Specializations")
		if len(specializations) == 0 {
			if err := specs.Clear(); err != nil {
				return err
			}
		} else if err := specs.Replace(specializations); err != nil {
			return err
		}

		lessonTopics := tx.Model(profile).Association("LessonTopics")
		if len(topics) == 0 {
			if err := lessonTopics.Clear(); err != nil {
				return err
			}
		} else if err := lessonTopics.Replace(topics); err != nil {
			return err
		}

		profile.Specializations = specializations
		profile.LessonTopics = topics
		return nil
	})
}

// --------------------------------------------------
// Search
// --------------------------------------------------

func (r *TeacherGormRepository) SearchAvailable(
	ctx context.Context,
	f teacher.SearchFilter,
) ([]models.TeacherProfile, error) {

	q := r.db.WithContext(ctx).
		Model(&models.TeacherProfile{}).
		Joins("JOIN users ON users.id = teacher_profiles.user_id").
		Where("teacher_profiles.is_available = ?", true).
		Where("users.user_type = ?", models.UserTypeTeacher)

	if f.SpecializationID != nil {
		q = q.Where(
			"EXISTS (SELECT 1 FROM teacher_profile_specializations tps WHERE tps.teacher_profile_id = teacher_profiles.id AND tps.specialization_id = ?)",
			*f.SpecializationID,
		)
	}
	if f.LessonTopicID != nil {
		q = q.Where(
			"EXISTS (SELECT 1 FROM teacher_profile_lesson_topics tpl WHERE tpl.teacher_profile_id = teacher_profiles.id AND tpl.lesson_topic_id = ?)",
			*f.LessonTopicID,
		)
	}
	if f.MaxHourlyRate != nil {
		q = q.Where("teacher_profiles.hourly_rate <= ?", *f.MaxHourlyRate)
	}

	var profiles []models.TeacherProfile
	if err := q.
		Preload("User").
		Order("teacher_profiles.id ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
