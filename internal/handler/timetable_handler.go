package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/service"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
	"github.com/examcell/exam-admin-api/pkg/response"
)

// TimetableHandler wires timetable and duty-roster persistence to HTTP routes.
type TimetableHandler struct {
	timetables *service.TimetableService
	exports    *service.ExportService
}

// NewTimetableHandler constructs a new TimetableHandler.
func NewTimetableHandler(timetables *service.TimetableService, exports *service.ExportService) *TimetableHandler {
	return &TimetableHandler{timetables: timetables, exports: exports}
}

// SaveTimetable godoc
// @Summary Save a batch of exam timetable entries
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.SaveTimetableRequest true "Exam type, semester and entries"
// @Success 200 {object} response.Envelope
// @Router /timetable/save [post]
func (h *TimetableHandler) SaveTimetable(c *gin.Context) {
	var req dto.SaveTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid request data"))
		return
	}

	result, err := h.timetables.SaveTimetable(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ListTimetable godoc
// @Summary List timetable entries for one semester
// @Tags Timetable
// @Produce json
// @Param semester path string true "Semester"
// @Success 200 {object} response.Envelope
// @Router /timetable/{semester} [get]
func (h *TimetableHandler) ListTimetable(c *gin.Context) {
	entries, err := h.timetables.ListTimetable(c.Request.Context(), c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// SaveDutyRoster godoc
// @Summary Save the faculty duty roster for the dates in the payload
// @Tags DutyRoster
// @Accept json
// @Produce json
// @Param payload body dto.SaveDutyRosterRequest true "Exam type and allocations"
// @Success 200 {object} response.Envelope
// @Router /duty-allocation/save [post]
func (h *TimetableHandler) SaveDutyRoster(c *gin.Context) {
	var req dto.SaveDutyRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid request data"))
		return
	}

	result, err := h.timetables.SaveDutyRoster(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ClearDutyRoster godoc
// @Summary Delete the whole duty roster
// @Tags DutyRoster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /duty-allocation/clear [delete]
func (h *TimetableHandler) ClearDutyRoster(c *gin.Context) {
	result, err := h.timetables.ClearDutyRoster(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ListDutyRoster godoc
// @Summary List the stored duty roster
// @Tags DutyRoster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /duty-allocation [get]
func (h *TimetableHandler) ListDutyRoster(c *gin.Context) {
	entries, err := h.timetables.ListDutyRoster(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// ExportDutyRoster godoc
// @Summary Download the duty roster as CSV or PDF
// @Tags DutyRoster
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /duty-allocation/export [get]
func (h *TimetableHandler) ExportDutyRoster(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))

	file, err := h.exports.DutyRoster(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
