package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

const cacheKeyClassroomList = "classrooms:list"

type classroomReader interface {
	List(ctx context.Context) ([]models.Classroom, error)
}

type seatingRoomRepo interface {
	List(ctx context.Context) ([]models.SeatingRoom, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	NextSequence(ctx context.Context) (int, error)
	Add(ctx context.Context, room *models.SeatingRoom) error
	DeleteByName(ctx context.Context, name string) (int64, error)
	UpdateBenches(ctx context.Context, name string, benches int) (int64, error)
}

// ClassroomService serves both room lists: the duty-allocation classrooms
// (read-only, cached) and the seating-side room sequence with its CRUD.
type ClassroomService struct {
	classrooms   classroomReader
	seatingRooms seatingRoomRepo
	cache        *CacheService
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewClassroomService wires the classroom dependencies.
func NewClassroomService(
	classrooms classroomReader,
	seatingRooms seatingRoomRepo,
	cache *CacheService,
	validate *validator.Validate,
	logger *zap.Logger,
) *ClassroomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomService{
		classrooms:   classrooms,
		seatingRooms: seatingRooms,
		cache:        cache,
		validator:    validate,
		logger:       logger,
	}
}

// ListClassrooms returns the duty-side classroom list, cache-first.
func (s *ClassroomService) ListClassrooms(ctx context.Context) ([]models.Classroom, error) {
	var cached []models.Classroom
	if hit, _ := s.cache.Get(ctx, cacheKeyClassroomList, &cached); hit {
		return cached, nil
	}

	classrooms, err := s.classrooms.List(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to list classrooms")
	}
	_ = s.cache.Set(ctx, cacheKeyClassroomList, classrooms, 0)
	return classrooms, nil
}

// ListSeatingRooms returns the seating-side room sequence.
func (s *ClassroomService) ListSeatingRooms(ctx context.Context) ([]models.SeatingRoom, error) {
	rooms, err := s.seatingRooms.List(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to list seating rooms")
	}
	return rooms, nil
}

// AddSeatingRoom appends a room at the end of the sequence. Names are unique.
func (s *ClassroomService) AddSeatingRoom(ctx context.Context, req dto.AddSeatingRoomRequest) (*dto.StatusResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Classroom name and number of benches are required.")
	}

	exists, err := s.seatingRooms.ExistsByName(ctx, req.ClassroomName)
	if err != nil {
		return nil, s.storeError(err, "failed to check seating room")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Classroom with this name already exists.")
	}

	seq, err := s.seatingRooms.NextSequence(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to compute sequence number")
	}

	room := &models.SeatingRoom{
		SequenceNumber: seq,
		ClassroomName:  req.ClassroomName,
		NoOfBenches:    req.NoOfBenches,
	}
	if err := s.seatingRooms.Add(ctx, room); err != nil {
		return nil, s.storeError(err, "failed to add seating room")
	}

	s.logger.Info("seating room added", zap.String("classroom", req.ClassroomName), zap.Int("sequence", seq))
	return &dto.StatusResult{Success: true, Message: "Classroom added successfully!"}, nil
}

// DeleteSeatingRoom removes a room by name.
func (s *ClassroomService) DeleteSeatingRoom(ctx context.Context, name string) (*dto.StatusResult, error) {
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Classroom name is required.")
	}

	deleted, err := s.seatingRooms.DeleteByName(ctx, name)
	if err != nil {
		return nil, s.storeError(err, "failed to delete seating room")
	}
	if deleted == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Classroom not found.")
	}

	return &dto.StatusResult{Success: true, Message: "Classroom deleted successfully!"}, nil
}

// UpdateBenches changes a seating room's bench count.
func (s *ClassroomService) UpdateBenches(ctx context.Context, req dto.UpdateBenchesRequest) (*dto.StatusResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Classroom name and new number of benches are required.")
	}

	updated, err := s.seatingRooms.UpdateBenches(ctx, req.ClassroomName, req.NewNoOfBenches)
	if err != nil {
		return nil, s.storeError(err, "failed to update benches")
	}
	if updated == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Classroom not found.")
	}

	return &dto.StatusResult{Success: true, Message: "Number of benches updated successfully!"}, nil
}

func (s *ClassroomService) storeError(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
