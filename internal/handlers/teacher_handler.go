package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lukas18007/dyschool/internal/dto"
	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/httpresp"
	"github.com/Lukas18007/dyschool/internal/usecase/teacher"
)

// ======================================================
// HANDLER
// ======================================================

type TeacherHandler struct {
	getProfile         *teacher.GetProfile
	saveProfile        *teacher.SaveProfile
	dashboard          *teacher.Dashboard
	getLessonRequest   *teacher.GetLessonRequest
	submitAvailability *teacher.SubmitAvailability
}

func NewTeacherHandler(
	getProfile *teacher.GetProfile,
	saveProfile *teacher.SaveProfile,
	dashboard *teacher.Dashboard,
	getLessonRequest *teacher.GetLessonRequest,
	submitAvailability *teacher.SubmitAvailability,
) *TeacherHandler {
	return &TeacherHandler{
		getProfile:         getProfile,
		saveProfile:        saveProfile,
		dashboard:          dashboard,
		getLessonRequest:   getLessonRequest,
		submitAvailability: submitAvailability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TeacherProfileRequest struct {
	Specializations []uint   `json:"specializations"`
	LessonTopics    []uint   `json:"lesson_topics"`
	HourlyRate      *float64 `json:"hourly_rate" binding:"required"`
	ExperienceYears *int     `json:"experience_years" binding:"required"`
	About           string   `json:"about" binding:"required"`
	IsAvailable     *bool    `json:"is_available"`
}

type AvailabilityRequest struct {
	AvailableDate string `json:"available_date" binding:"required"` // YYYY-MM-DD
	AvailableTime string `json:"available_time" binding:"required"` // HH:MM
	Duration      int    `json:"duration" binding:"required"`
}

// ======================================================
// PROFILE
// ======================================================

func (h *TeacherHandler) GetProfile(c *gin.Context) {
	profile, err := h.getProfile.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"profile": dto.ToTeacherProfileDTO(profile)})
}

func (h *TeacherHandler) SaveProfile(c *gin.Context) {
	var req TeacherProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.saveProfile.Execute(c.Request.Context(), teacher.SaveProfileInput{
		UserID:            currentUserID(c),
		SpecializationIDs: req.Specializations,
		LessonTopicIDs:    req.LessonTopics,
		HourlyRate:        *req.HourlyRate,
		ExperienceYears:   *req.ExperienceYears,
		About:             req.About,
		IsAvailable:       req.IsAvailable,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"profile":  dto.ToTeacherProfileDTO(profile),
		"message":  "Teacher profile updated successfully!",
		"redirect": "/teacher/dashboard/",
	})
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *TeacherHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboard.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"profile":         dto.ToTeacherProfileDTO(view.Profile),
		"lesson_requests": dto.ToLessonRequestDTOs(view.PendingRequests),
		"availabilities":  dto.ToAvailabilityDTOs(view.Availabilities),
		"bookings":        dto.ToBookingDTOs(view.Bookings),
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *TeacherHandler) AvailabilityForm(c *gin.Context) {
	requestID, ok := paramID(c, "request_id")
	if !ok {
		return
	}

	req, err := h.getLessonRequest.Execute(c.Request.Context(), requestID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"lesson_request": dto.ToLessonRequestDTO(req)})
}

func (h *TeacherHandler) SubmitAvailability(c *gin.Context) {
	requestID, ok := paramID(c, "request_id")
	if !ok {
		return
	}

	var req AvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.submitAvailability.Execute(c.Request.Context(), teacher.SubmitAvailabilityInput{
		TeacherID:       currentUserID(c),
		LessonRequestID: requestID,
		AvailableDate:   req.AvailableDate,
		AvailableTime:   req.AvailableTime,
		Duration:        req.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"availability": dto.ToAvailabilityDTO(a),
		"message":      "Availability submitted successfully!",
		"redirect":     "/teacher/dashboard/",
	})
}
