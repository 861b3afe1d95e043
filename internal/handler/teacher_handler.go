package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/models"
	"github.com/examcell/exam-admin-api/internal/service"
	"github.com/examcell/exam-admin-api/pkg/response"
)

// TeacherHandler wires teacher listings to HTTP routes.
type TeacherHandler struct {
	teachers *service.TeacherService
}

// NewTeacherHandler constructs a new TeacherHandler.
func NewTeacherHandler(teachers *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// ListBySemester godoc
// @Summary List teachers flagged for one semester track
// @Tags Teachers
// @Produce json
// @Param semester path string true "Semester (3 or 5)"
// @Success 200 {object} response.Envelope
// @Router /teachers/{semester} [get]
func (h *TeacherHandler) ListBySemester(c *gin.Context) {
	teachers, err := h.teachers.ListBySemester(c.Request.Context(), models.Semester(c.Param("semester")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teachers)
}

// Info godoc
// @Summary List every teacher with both semester flags
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers-info [get]
func (h *TeacherHandler) Info(c *gin.Context) {
	teachers, err := h.teachers.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teachers)
}

// Details godoc
// @Summary List the raw seed-file teacher rows with course names
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers-details [get]
func (h *TeacherHandler) Details(c *gin.Context) {
	details, err := h.teachers.Details(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, details)
}

// Unallocated godoc
// @Summary List teachers without a duty allocation
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /unallocated-teachers [get]
func (h *TeacherHandler) Unallocated(c *gin.Context) {
	teachers, err := h.teachers.ListUnallocated(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teachers)
}

// AvailableClassrooms godoc
// @Summary List under-capacity rooms with their occupancy counts
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /available-classrooms [get]
func (h *TeacherHandler) AvailableClassrooms(c *gin.Context) {
	rooms, err := h.teachers.ListAvailableClassrooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rooms)
}
