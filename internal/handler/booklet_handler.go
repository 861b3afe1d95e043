package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/service"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
	"github.com/examcell/exam-admin-api/pkg/response"
)

// BookletHandler wires answer-booklet assignment to HTTP routes.
type BookletHandler struct {
	booklets *service.BookletService
}

// NewBookletHandler constructs a new BookletHandler.
func NewBookletHandler(booklets *service.BookletService) *BookletHandler {
	return &BookletHandler{booklets: booklets}
}

// Assign godoc
// @Summary Generate booklet IDs for a roll range
// @Tags Booklets
// @Accept json
// @Produce json
// @Param payload body dto.AssignBookletsRequest true "Exam, division and roll range"
// @Success 200 {object} response.Envelope
// @Router /booklets/assign [post]
func (h *BookletHandler) Assign(c *gin.Context) {
	var req dto.AssignBookletsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All fields are required"))
		return
	}

	result, err := h.booklets.Assign(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// List godoc
// @Summary List assigned booklets
// @Tags Booklets
// @Produce json
// @Param semester query string false "Semester"
// @Param division query string false "Division"
// @Param course query string false "Course"
// @Param isa_exam_number query string false "ISA exam number"
// @Success 200 {object} response.Envelope
// @Router /booklets [get]
func (h *BookletHandler) List(c *gin.Context) {
	filter := dto.BookletFilter{
		Semester:      c.Query("semester"),
		Division:      c.Query("division"),
		Course:        c.Query("course"),
		ISAExamNumber: c.Query("isa_exam_number"),
	}

	booklets, err := h.booklets.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, booklets)
}
