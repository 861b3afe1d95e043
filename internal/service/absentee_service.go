package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type absenteeRepo interface {
	Insert(ctx context.Context, record *models.Absentee) error
	List(ctx context.Context, filter dto.AbsenteeFilter) ([]models.Absentee, error)
	CoursesWithAbsentees(ctx context.Context, semester string) ([]string, error)
}

// AbsenteeService records and lists exam absentees.
type AbsenteeService struct {
	absentees absenteeRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAbsenteeService wires the absentee dependencies.
func NewAbsenteeService(absentees absenteeRepo, validate *validator.Validate, logger *zap.Logger) *AbsenteeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AbsenteeService{absentees: absentees, validator: validate, logger: logger}
}

// MarkAttendance persists the absent records from a batch; present students
// are acknowledged but never stored.
func (s *AbsenteeService) MarkAttendance(ctx context.Context, req dto.MarkAttendanceRequest) (*dto.StatusResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Attendance data is required")
	}

	absent := 0
	for _, record := range req.AttendanceData {
		if record.Status != models.StatusAbsent {
			continue
		}
		row := &models.Absentee{
			RollNumber:    record.RollNumber,
			Division:      record.Division,
			Course:        record.Course,
			Semester:      record.Semester,
			ISAExamNumber: record.ISAExamNumber,
			Status:        record.Status,
		}
		if err := s.absentees.Insert(ctx, row); err != nil {
			return nil, s.storeError(err, "failed to mark attendance")
		}
		absent++
	}

	s.logger.Info("attendance marked",
		zap.Int("records", len(req.AttendanceData)),
		zap.Int("absent", absent),
	)
	return &dto.StatusResult{Success: true, Message: "Attendance marked successfully"}, nil
}

// List returns absent records matching the filter.
func (s *AbsenteeService) List(ctx context.Context, filter dto.AbsenteeFilter) ([]models.Absentee, error) {
	records, err := s.absentees.List(ctx, filter)
	if err != nil {
		return nil, s.storeError(err, "failed to list absentees")
	}
	return records, nil
}

// CoursesWithAbsentees lists courses having at least one absent record for
// the semester.
func (s *AbsenteeService) CoursesWithAbsentees(ctx context.Context, semester string) ([]string, error) {
	if semester == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Semester is required")
	}
	courses, err := s.absentees.CoursesWithAbsentees(ctx, semester)
	if err != nil {
		return nil, s.storeError(err, "failed to list courses with absentees")
	}
	return courses, nil
}

func (s *AbsenteeService) storeError(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
