package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/service"
	"github.com/examcell/exam-admin-api/pkg/response"
)

// FacultyHandler wires the faculty list to HTTP routes.
type FacultyHandler struct {
	faculty *service.FacultyService
}

// NewFacultyHandler constructs a new FacultyHandler.
func NewFacultyHandler(faculty *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{faculty: faculty}
}

// List godoc
// @Summary List faculty in invigilating ranks
// @Tags Faculty
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /faculty [get]
func (h *FacultyHandler) List(c *gin.Context) {
	members, err := h.faculty.ListInvigilators(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, members)
}
