package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lukas18007/dyschool/internal/dto"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/httpresp"
	"github.com/Lukas18007/dyschool/internal/usecase/lesson"
)

// ======================================================
// HANDLER
// ======================================================

type LessonHandler struct {
	search           *lesson.SearchTeachers
	requestForm      *lesson.GetRequestForm
	createRequest    *lesson.CreateRequest
	accept           *lesson.AcceptAvailability
	studentDashboard *lesson.StudentDashboard
}

func NewLessonHandler(
	search *lesson.SearchTeachers,
	requestForm *lesson.GetRequestForm,
	createRequest *lesson.CreateRequest,
	accept *lesson.AcceptAvailability,
	studentDashboard *lesson.StudentDashboard,
) *LessonHandler {
	return &LessonHandler{
		search:           search,
		requestForm:      requestForm,
		createRequest:    createRequest,
		accept:           accept,
		studentDashboard: studentDashboard,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type LessonRequestRequest struct {
	LessonTopic     uint     `json:"lesson_topic" binding:"required"`
	LessonDuration  int      `json:"lesson_duration" binding:"required"`
	MaxHourlyRate   *float64 `json:"max_hourly_rate" binding:"required"`
	AdditionalNotes string   `json:"additional_notes"`
}

// ======================================================
// SEARCH
// ======================================================

func (h *LessonHandler) Search(c *gin.Context) {
	q := newQueryParser(c)
	in := lesson.SearchInput{
		SpecializationID: q.optUint("specialization"),
		LessonTopicID:    q.optUint("lesson_topic"),
		MaxHourlyRate:    q.optFloat("max_hourly_rate"),
		LessonDuration:   q.optInt("lesson_duration"),
	}
	if err := q.err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	teachers, err := h.search.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"teachers": dto.ToTeacherSummaries(teachers)})
}

// ======================================================
// LESSON REQUEST
// ======================================================

func (h *LessonHandler) RequestForm(c *gin.Context) {
	teacherID, ok := paramID(c, "teacher_id")
	if !ok {
		return
	}

	form, err := h.requestForm.Execute(c.Request.Context(), teacherID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"teacher":       dto.ToPersonDTO(form.Teacher),
		"lesson_topics": dto.ToLessonTopicDTOs(form.LessonTopics),
	})
}

func (h *LessonHandler) CreateRequest(c *gin.Context) {
	teacherID, ok := paramID(c, "teacher_id")
	if !ok {
		return
	}

	var req LessonRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	created, teacher, err := h.createRequest.Execute(c.Request.Context(), lesson.CreateRequestInput{
		StudentID:       currentUserID(c),
		TeacherID:       teacherID,
		LessonTopicID:   req.LessonTopic,
		LessonDuration:  req.LessonDuration,
		MaxHourlyRate:   *req.MaxHourlyRate,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"lesson_request": gin.H{
			"id":               created.ID,
			"lesson_topic_id":  created.LessonTopicID,
			"lesson_duration":  created.LessonDuration,
			"max_hourly_rate":  created.MaxHourlyRate,
			"additional_notes": created.AdditionalNotes,
			"status":           created.Status,
			"created_at":       created.CreatedAt,
		},
		"message":  "Lesson request sent to " + teacher.FullNameOrUsername() + "!",
		"redirect": "/student/dashboard/",
	})
}

// ======================================================
// ACCEPT
// ======================================================

func (h *LessonHandler) Accept(c *gin.Context) {
	availabilityID, ok := paramID(c, "availability_id")
	if !ok {
		return
	}

	booking, err := h.accept.Execute(c.Request.Context(), currentUserID(c), availabilityID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"booking":  dto.ToBookingDTO(booking),
		"message":  "Lesson booked with " + booking.Teacher.FullNameOrUsername() + "!",
		"redirect": "/student/dashboard/",
	})
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *LessonHandler) StudentDashboard(c *gin.Context) {
	view, err := h.studentDashboard.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"lesson_requests": dto.ToLessonRequestDTOs(view.Requests),
		"availabilities":  dto.ToAvailabilityDTOs(view.Availabilities),
		"bookings":        dto.ToBookingDTOs(view.Bookings),
	})
}
