package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lukas18007/dyschool/internal/domain/lesson"
	"github.com/Lukas18007/dyschool/internal/models"
)

type LessonGormRepository struct {
	db *gorm.DB
}

func NewLessonGormRepository(db *gorm.DB) *LessonGormRepository {
	return &LessonGormRepository{db: db}
}

var _ lesson.Repository = (*LessonGormRepository)(nil)

func (r *LessonGormRepository) Atomic(
	ctx context.Context,
	fn func(repo lesson.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LessonGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Lesson requests
// --------------------------------------------------

func (r *LessonGormRepository) CreateRequest(
	ctx context.Context,
	req *models.LessonRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *LessonGormRepository) GetRequest(
	ctx context.Context,
	id uint,
) (*models.LessonRequest, error) {

	var req models.LessonRequest
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("LessonTopic.Specialization").
		First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *LessonGormRepository) ListRequestsByStudent(
	ctx context.Context,
	studentID uint,
) ([]models.LessonRequest, error) {

	var reqs []models.LessonRequest
	if err := r.db.WithContext(ctx).
		Preload("LessonTopic.Specialization").
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *LessonGormRepository) ListPendingRequestsForTopics(
	ctx context.Context,
	topicIDs []uint,
	excludeStudentID uint,
) ([]models.LessonRequest, error) {

	var reqs []models.LessonRequest
	if len(topicIDs) == 0 {
		return reqs, nil
	}

	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("LessonTopic.Specialization").
		Where("status = ?", lesson.RequestPending).
		Where("lesson_topic_id IN ?", topicIDs).
		Where("student_id <> ?", excludeStudentID).
		Order("created_at DESC, id DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *LessonGormRepository) TransitionRequest(
	ctx context.Context,
	id uint,
	from lesson.RequestStatus,
	to lesson.RequestStatus,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.LessonRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Availabilities
// --------------------------------------------------

func (r *LessonGormRepository) CreateAvailability(
	ctx context.Context,
	a *models.TeacherAvailability,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LessonGormRepository) GetAvailability(
	ctx context.Context,
	id uint,
) (*models.TeacherAvailability, error) {

	var a models.TeacherAvailability
	if err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("LessonRequest").
		First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *LessonGormRepository) ListAvailabilitiesByTeacher(
	ctx context.Context,
	teacherID uint,
) ([]models.TeacherAvailability, error) {

	var list []models.TeacherAvailability
	if err := r.db.WithContext(ctx).
		Preload("LessonRequest.Student").
		Preload("LessonRequest.LessonTopic").
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *LessonGormRepository) ListAvailabilitiesForStudent(
	ctx context.Context,
	studentID uint,
) ([]models.TeacherAvailability, error) {

	var list []models.TeacherAvailability
	if err := r.db.WithContext(ctx).
		Joins("JOIN lesson_requests ON lesson_requests.id = teacher_availabilities.lesson_request_id").
		Where("lesson_requests.student_id = ?", studentID).
		Preload("Teacher").
		Preload("LessonRequest.LessonTopic").
		Order("teacher_availabilities.created_at DESC, teacher_availabilities.id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *LessonGormRepository) MarkAvailabilityAccepted(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.TeacherAvailability{}).
		Where("id = ? AND is_accepted = ?", id, false).
		Update("is_accepted", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *LessonGormRepository) CreateBooking(
	ctx context.Context,
	b *models.LessonBooking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *LessonGormRepository) ListBookingsByTeacher(
	ctx context.Context,
	teacherID uint,
) ([]models.LessonBooking, error) {

	var list []models.LessonBooking
	if err := r.db.WithContext(ctx).
		Preload("LessonRequest.Student").
		Preload("LessonRequest.LessonTopic").
		Preload("TeacherAvailability").
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *LessonGormRepository) ListBookingsByStudent(
	ctx context.Context,
	studentID uint,
) ([]models.LessonBooking, error) {

	var list []models.LessonBooking
	if err := r.db.WithContext(ctx).
		Joins("JOIN lesson_requests ON lesson_requests.id = lesson_bookings.lesson_request_id").
		Where("lesson_requests.student_id = ?", studentID).
		Preload("Teacher").
		Preload("LessonRequest.LessonTopic").
		Preload("TeacherAvailability").
		Order("lesson_bookings.created_at DESC, lesson_bookings.id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *LessonGormRepository) ListBookingsByStatus(
	ctx context.Context,
	status lesson.BookingStatus,
) ([]models.LessonBooking, error) {

	var list []models.LessonBooking
	if err := r.db.WithContext(ctx).
		Preload("TeacherAvailability").
		Where("status = ?", status).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *LessonGormRepository) TransitionBooking(
	ctx context.Context,
	id uint,
	from lesson.BookingStatus,
	to lesson.BookingStatus,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.LessonBooking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
