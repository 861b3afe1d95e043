package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examcell/exam-admin-api/internal/models"
	"github.com/examcell/exam-admin-api/internal/service"
)

type arrangementReaderStub struct {
	records []models.SeatArrangement
}

func (s *arrangementReaderStub) List(ctx context.Context) ([]models.SeatArrangement, error) {
	return s.records, nil
}

type rosterReaderStub struct {
	entries []models.DutyRosterEntry
}

func (s *rosterReaderStub) List(ctx context.Context) ([]models.DutyRosterEntry, error) {
	return s.entries, nil
}

func TestSeatingHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exports := service.NewExportService(&arrangementReaderStub{records: []models.SeatArrangement{
		{ClassroomName: "CLH201", ThirdSemRollNumbers: "101-120", FifthSemRollNumbers: models.EmptyRange},
	}}, &rosterReaderStub{}, nil, nil, nil)
	h := NewSeatingHandler(nil, exports)

	r := gin.New()
	r.GET("/seating-arrangement/export", h.Export)

	w := performJSON(t, r, http.MethodGet, "/seating-arrangement/export?format=csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=seating-arrangement.csv", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "CLH201,101-120,EMPTY")
}

func TestSeatingHandlerExportDefaultsToCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exports := service.NewExportService(&arrangementReaderStub{}, &rosterReaderStub{}, nil, nil, nil)
	h := NewSeatingHandler(nil, exports)

	r := gin.New()
	r.GET("/seating-arrangement/export", h.Export)

	w := performJSON(t, r, http.MethodGet, "/seating-arrangement/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
}

func TestSeatingHandlerExportBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exports := service.NewExportService(&arrangementReaderStub{}, &rosterReaderStub{}, nil, nil, nil)
	h := NewSeatingHandler(nil, exports)

	r := gin.New()
	r.GET("/seating-arrangement/export", h.Export)

	w := performJSON(t, r, http.MethodGet, "/seating-arrangement/export?format=xlsx", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
