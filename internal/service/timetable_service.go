package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type timetableRepo interface {
	InsertEntries(ctx context.Context, exec sqlx.ExtContext, entries []models.TimetableEntry) error
	ListBySemester(ctx context.Context, semester string) ([]models.TimetableEntry, error)
}

type dutyRosterRepo interface {
	DeleteByExamAndDates(ctx context.Context, exec sqlx.ExtContext, examType string, dates []string) error
	InsertEntries(ctx context.Context, exec sqlx.ExtContext, entries []models.DutyRosterEntry) error
	DeleteAll(ctx context.Context, exec sqlx.ExtContext) error
	List(ctx context.Context) ([]models.DutyRosterEntry, error)
}

// TimetableService persists exam timetables and the faculty duty roster.
type TimetableService struct {
	timetables timetableRepo
	roster     dutyRosterRepo
	tx         txBeginner
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewTimetableService wires the timetable dependencies.
func NewTimetableService(timetables timetableRepo, roster dutyRosterRepo, tx txBeginner, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{timetables: timetables, roster: roster, tx: tx, validator: validate, logger: logger}
}

// SaveTimetable appends a batch of timetable entries in one transaction.
func (s *TimetableService) SaveTimetable(ctx context.Context, req dto.SaveTimetableRequest) (*dto.StatusResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid request data")
	}

	entries := make([]models.TimetableEntry, 0, len(req.Entries))
	for _, in := range req.Entries {
		entries = append(entries, models.TimetableEntry{
			ExamType:   req.ExamType,
			Semester:   req.Semester,
			Department: in.Department,
			Date:       in.Date,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			CourseName: in.CourseName,
			CourseCode: in.CourseCode,
		})
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.storeError(err, "failed to open transaction")
	}
	if err := s.timetables.InsertEntries(ctx, tx, entries); err != nil {
		_ = tx.Rollback()
		return nil, s.storeError(err, "Failed to save timetable")
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storeError(err, "Failed to save timetable")
	}

	s.logger.Info("timetable saved",
		zap.String("exam_type", req.ExamType),
		zap.String("semester", req.Semester),
		zap.Int("entries", len(entries)),
	)
	return &dto.StatusResult{Success: true, Message: "Timetable saved successfully"}, nil
}

// ListTimetable returns the stored entries for one semester.
func (s *TimetableService) ListTimetable(ctx context.Context, semester string) ([]models.TimetableEntry, error) {
	entries, err := s.timetables.ListBySemester(ctx, semester)
	if err != nil {
		return nil, s.storeError(err, "failed to list timetable")
	}
	return entries, nil
}

// SaveDutyRoster replaces the roster for the dates named in the payload:
// existing rows for the exam on those dates are deleted, then the new batch
// is inserted, all in one transaction.
func (s *TimetableService) SaveDutyRoster(ctx context.Context, req dto.SaveDutyRosterRequest) (*dto.StatusResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid request data")
	}
	if !models.ExamType(req.ExamType).Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid exam type")
	}

	seen := make(map[string]struct{}, len(req.Allocations))
	dates := make([]string, 0, len(req.Allocations))
	entries := make([]models.DutyRosterEntry, 0, len(req.Allocations))
	for _, in := range req.Allocations {
		if _, ok := seen[in.Date]; !ok {
			seen[in.Date] = struct{}{}
			dates = append(dates, in.Date)
		}
		entries = append(entries, models.DutyRosterEntry{
			ExamType:    req.ExamType,
			Date:        in.Date,
			Session:     in.Session,
			FacultyName: in.Name,
			Classroom:   in.Classroom,
		})
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.storeError(err, "failed to open transaction")
	}
	if err := s.roster.DeleteByExamAndDates(ctx, tx, req.ExamType, dates); err != nil {
		_ = tx.Rollback()
		return nil, s.storeError(err, "Failed to save duty allocations")
	}
	if err := s.roster.InsertEntries(ctx, tx, entries); err != nil {
		_ = tx.Rollback()
		return nil, s.storeError(err, "Failed to save duty allocations")
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storeError(err, "Failed to save duty allocations")
	}

	s.logger.Info("duty roster saved",
		zap.String("exam_type", req.ExamType),
		zap.Strings("dates", dates),
		zap.Int("entries", len(entries)),
	)
	return &dto.StatusResult{Success: true, Message: "Duty allocations saved successfully"}, nil
}

// ClearDutyRoster wipes the whole roster.
func (s *TimetableService) ClearDutyRoster(ctx context.Context) (*dto.StatusResult, error) {
	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.storeError(err, "failed to open transaction")
	}
	if err := s.roster.DeleteAll(ctx, tx); err != nil {
		_ = tx.Rollback()
		return nil, s.storeError(err, "Failed to clear duty allocations")
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storeError(err, "Failed to clear duty allocations")
	}
	return &dto.StatusResult{Success: true, Message: "Duty allocations cleared successfully"}, nil
}

// ListDutyRoster returns the stored roster.
func (s *TimetableService) ListDutyRoster(ctx context.Context) ([]models.DutyRosterEntry, error) {
	entries, err := s.roster.List(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to list duty roster")
	}
	return entries, nil
}

func (s *TimetableService) storeError(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
