package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type teacherReader interface {
	ListBySemester(ctx context.Context, sem models.Semester) ([]models.Teacher, error)
	ListAll(ctx context.Context) ([]models.Teacher, error)
	ListUnallocated(ctx context.Context) ([]models.Teacher, error)
}

type availableClassroomReader interface {
	ListAvailable(ctx context.Context) ([]models.ClassroomOccupancy, error)
}

// teacherDetailSource yields the raw seed-file rows behind teachers-details.
type teacherDetailSource interface {
	TeacherDetails() ([]models.TeacherDetail, error)
}

// TeacherService serves teacher listings for the duty-allocation front-end.
type TeacherService struct {
	teachers   teacherReader
	classrooms availableClassroomReader
	details    teacherDetailSource
	logger     *zap.Logger
}

// NewTeacherService wires the teacher listing dependencies.
func NewTeacherService(teachers teacherReader, classrooms availableClassroomReader, details teacherDetailSource, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{teachers: teachers, classrooms: classrooms, details: details, logger: logger}
}

// ListBySemester returns teachers flagged for one semester track.
func (s *TeacherService) ListBySemester(ctx context.Context, sem models.Semester) ([]models.Teacher, error) {
	if !sem.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid semester")
	}
	teachers, err := s.teachers.ListBySemester(ctx, sem)
	if err != nil {
		return nil, s.storeError(err, "failed to list teachers")
	}
	return teachers, nil
}

// ListAll returns every registered teacher with both semester flags.
func (s *TeacherService) ListAll(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.teachers.ListAll(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to list teachers")
	}
	return teachers, nil
}

// ListUnallocated returns teachers without any duty allocation.
func (s *TeacherService) ListUnallocated(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.teachers.ListUnallocated(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to list unallocated teachers")
	}
	return teachers, nil
}

// ListAvailableClassrooms returns under-capacity rooms with their occupancy
// snapshot, the same view the batch allocator decides from.
func (s *TeacherService) ListAvailableClassrooms(ctx context.Context) ([]models.ClassroomOccupancy, error) {
	rooms, err := s.classrooms.ListAvailable(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to list available classrooms")
	}
	return rooms, nil
}

// Details returns the raw seed-file teacher rows with their course names.
func (s *TeacherService) Details(ctx context.Context) ([]models.TeacherDetail, error) {
	details, err := s.details.TeacherDetails()
	if err != nil {
		s.logger.Error("failed to read teacher details", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch teacher details")
	}
	return details, nil
}

func (s *TeacherService) storeError(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
