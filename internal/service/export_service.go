package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
	"github.com/examcell/exam-admin-api/pkg/export"
)

// ExportFormat selects the rendered output type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered document ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type arrangementReader interface {
	List(ctx context.Context) ([]models.SeatArrangement, error)
}

type rosterReader interface {
	List(ctx context.Context) ([]models.DutyRosterEntry, error)
}

// ExportService renders the persisted seating and duty-roster snapshots as
// downloadable CSV or PDF documents.
type ExportService struct {
	arrangements arrangementReader
	roster       rosterReader
	csv          csvRenderer
	pdf          pdfRenderer
	logger       *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(arrangements arrangementReader, roster rosterReader, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{arrangements: arrangements, roster: roster, csv: csv, pdf: pdf, logger: logger}
}

// SeatingArrangement renders the stored seating snapshot.
func (s *ExportService) SeatingArrangement(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	records, err := s.arrangements.List(ctx)
	if err != nil {
		s.logger.Error("failed to load seat arrangement for export", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load seat arrangement")
	}

	dataset := export.Dataset{
		Headers: []string{"Classroom", "3rd Sem Rolls", "5th Sem Rolls", "3rd Sem Papers", "5th Sem Papers"},
		Rows:    make([]map[string]string, 0, len(records)),
	}
	for _, rec := range records {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Classroom":      rec.ClassroomName,
			"3rd Sem Rolls":  rec.ThirdSemRollNumbers,
			"5th Sem Rolls":  rec.FifthSemRollNumbers,
			"3rd Sem Papers": formatPaperCount(rec.ThirdSemPaperCount),
			"5th Sem Papers": formatPaperCount(rec.FifthSemPaperCount),
		})
	}

	return s.render(dataset, "Seating Arrangement", "seating-arrangement", format)
}

// DutyRoster renders the stored faculty duty roster.
func (s *ExportService) DutyRoster(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	entries, err := s.roster.List(ctx)
	if err != nil {
		s.logger.Error("failed to load duty roster for export", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load duty roster")
	}

	dataset := export.Dataset{
		Headers: []string{"Exam", "Date", "Session", "Faculty", "Classroom"},
		Rows:    make([]map[string]string, 0, len(entries)),
	}
	for _, e := range entries {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Exam":      e.ExamType,
			"Date":      e.Date,
			"Session":   e.Session,
			"Faculty":   e.FacultyName,
			"Classroom": e.Classroom,
		})
	}

	return s.render(dataset, "Duty Roster", "duty-roster", format)
}

func (s *ExportService) render(dataset export.Dataset, title, basename string, format ExportFormat) (*ExportFile, error) {
	switch format {
	case FormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{Filename: basename + ".csv", ContentType: "text/csv", Payload: payload}, nil
	case FormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{Filename: basename + ".pdf", ContentType: "application/pdf", Payload: payload}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
}

func formatPaperCount(count *int) string {
	if count == nil {
		return ""
	}
	return strconv.Itoa(*count)
}
