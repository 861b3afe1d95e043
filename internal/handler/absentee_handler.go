package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/service"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
	"github.com/examcell/exam-admin-api/pkg/response"
)

// AbsenteeHandler wires absentee tracking to HTTP routes.
type AbsenteeHandler struct {
	absentees *service.AbsenteeService
}

// NewAbsenteeHandler constructs a new AbsenteeHandler.
func NewAbsenteeHandler(absentees *service.AbsenteeService) *AbsenteeHandler {
	return &AbsenteeHandler{absentees: absentees}
}

// Mark godoc
// @Summary Record absentees from an attendance batch
// @Tags Absentees
// @Accept json
// @Produce json
// @Param payload body dto.MarkAttendanceRequest true "Attendance records"
// @Success 200 {object} response.Envelope
// @Router /absentees/mark [post]
func (h *AbsenteeHandler) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Attendance data is required"))
		return
	}

	result, err := h.absentees.MarkAttendance(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// List godoc
// @Summary List absent records
// @Tags Absentees
// @Produce json
// @Param semester query string false "Semester"
// @Param division query string false "Division"
// @Param course query string false "Course"
// @Success 200 {object} response.Envelope
// @Router /absentees [get]
func (h *AbsenteeHandler) List(c *gin.Context) {
	filter := dto.AbsenteeFilter{
		Semester: c.Query("semester"),
		Division: c.Query("division"),
		Course:   c.Query("course"),
	}

	records, err := h.absentees.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}

// Courses godoc
// @Summary List courses with at least one absent record
// @Tags Absentees
// @Produce json
// @Param semester path string true "Semester"
// @Success 200 {object} response.Envelope
// @Router /timetable/courses/{semester} [get]
func (h *AbsenteeHandler) Courses(c *gin.Context) {
	courses, err := h.absentees.CoursesWithAbsentees(c.Request.Context(), c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}
