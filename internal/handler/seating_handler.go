package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/service"
	"github.com/examcell/exam-admin-api/pkg/response"
)

// SeatingHandler wires the seating allocator to HTTP routes.
type SeatingHandler struct {
	seating *service.SeatingService
	exports *service.ExportService
}

// NewSeatingHandler constructs a new SeatingHandler.
func NewSeatingHandler(seating *service.SeatingService, exports *service.ExportService) *SeatingHandler {
	return &SeatingHandler{seating: seating, exports: exports}
}

// Compute godoc
// @Summary Recompute and return the seating arrangement
// @Tags Seating
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /seating-arrangement [get]
func (h *SeatingHandler) Compute(c *gin.Context) {
	records, err := h.seating.ComputeArrangement(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}

// Export godoc
// @Summary Download the stored seating arrangement as CSV or PDF
// @Tags Seating
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /seating-arrangement/export [get]
func (h *SeatingHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))

	file, err := h.exports.SeatingArrangement(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
