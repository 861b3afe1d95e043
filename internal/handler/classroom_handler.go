package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/service"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
	"github.com/examcell/exam-admin-api/pkg/response"
)

// ClassroomHandler wires both room lists to HTTP routes.
type ClassroomHandler struct {
	classrooms *service.ClassroomService
}

// NewClassroomHandler constructs a new ClassroomHandler.
func NewClassroomHandler(classrooms *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{classrooms: classrooms}
}

// List godoc
// @Summary List duty-allocation classrooms
// @Tags Classrooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classrooms [get]
func (h *ClassroomHandler) List(c *gin.Context) {
	classrooms, err := h.classrooms.ListClassrooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classrooms)
}

// ListSeatingRooms godoc
// @Summary List seating rooms in sequence order
// @Tags Classrooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classroom-list [get]
func (h *ClassroomHandler) ListSeatingRooms(c *gin.Context) {
	rooms, err := h.classrooms.ListSeatingRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rooms)
}

// Add godoc
// @Summary Append a seating room to the sequence
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body dto.AddSeatingRoomRequest true "Room name and bench count"
// @Success 200 {object} response.Envelope
// @Router /classroom-list [post]
func (h *ClassroomHandler) Add(c *gin.Context) {
	var req dto.AddSeatingRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Classroom name and number of benches are required."))
		return
	}

	result, err := h.classrooms.AddSeatingRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Delete godoc
// @Summary Remove a seating room by name
// @Tags Classrooms
// @Produce json
// @Param name path string true "Classroom name"
// @Success 200 {object} response.Envelope
// @Router /classroom-list/{name} [delete]
func (h *ClassroomHandler) Delete(c *gin.Context) {
	result, err := h.classrooms.DeleteSeatingRoom(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// UpdateBenches godoc
// @Summary Change a seating room's bench count
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body dto.UpdateBenchesRequest true "Room name and new bench count"
// @Success 200 {object} response.Envelope
// @Router /classroom-list/benches [put]
func (h *ClassroomHandler) UpdateBenches(c *gin.Context) {
	var req dto.UpdateBenchesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Classroom name and new number of benches are required."))
		return
	}

	result, err := h.classrooms.UpdateBenches(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
