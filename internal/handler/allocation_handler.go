package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/service"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
	"github.com/examcell/exam-admin-api/pkg/response"
)

// AllocationHandler wires the duty allocator to HTTP routes.
type AllocationHandler struct {
	allocations *service.DutyAllocationService
}

// NewAllocationHandler constructs a new AllocationHandler.
func NewAllocationHandler(allocations *service.DutyAllocationService) *AllocationHandler {
	return &AllocationHandler{allocations: allocations}
}

// AllocateDivision godoc
// @Summary Batch-allocate teachers of one division to available rooms
// @Tags Allocations
// @Accept json
// @Produce json
// @Param payload body dto.AllocateDivisionRequest true "Semester and division"
// @Success 200 {object} response.Envelope
// @Router /allocate-division [post]
func (h *AllocationHandler) AllocateDivision(c *gin.Context) {
	var req dto.AllocateDivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid allocation payload"))
		return
	}

	result, err := h.allocations.AllocateDivision(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ManualAllocate godoc
// @Summary Place one teacher into one classroom
// @Tags Allocations
// @Accept json
// @Produce json
// @Param payload body dto.ManualAllocateRequest true "Teacher and classroom IDs"
// @Success 200 {object} response.Envelope
// @Router /manual-allocate [post]
func (h *AllocationHandler) ManualAllocate(c *gin.Context) {
	var req dto.ManualAllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Teacher ID and Classroom ID are required"))
		return
	}

	result, err := h.allocations.ManualAllocate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// List godoc
// @Summary List rooms split into allocated and unallocated
// @Tags Allocations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /allocations [get]
func (h *AllocationHandler) List(c *gin.Context) {
	overview, err := h.allocations.ListAllocations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, overview)
}

// ClearClassroom godoc
// @Summary Delete every allocation for one classroom
// @Tags Allocations
// @Produce json
// @Param classroomId path int true "Classroom ID"
// @Success 200 {object} response.Envelope
// @Router /allocations/classroom/{classroomId} [delete]
func (h *AllocationHandler) ClearClassroom(c *gin.Context) {
	classroomID, err := strconv.ParseInt(c.Param("classroomId"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid classroom id"))
		return
	}

	result, err := h.allocations.ClearClassroom(c.Request.Context(), classroomID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// QuestionPapers godoc
// @Summary Per-track question paper counts for one classroom
// @Tags Allocations
// @Produce json
// @Param classroomId path int true "Classroom ID"
// @Success 200 {object} response.Envelope
// @Router /question-papers/{classroomId} [get]
func (h *AllocationHandler) QuestionPapers(c *gin.Context) {
	classroomID, err := strconv.ParseInt(c.Param("classroomId"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid classroom id"))
		return
	}

	counts, err := h.allocations.QuestionPapers(c.Request.Context(), classroomID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, counts)
}
