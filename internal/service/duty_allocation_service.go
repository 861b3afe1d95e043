package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type classroomOccupancyReader interface {
	ListAvailable(ctx context.Context) ([]models.ClassroomOccupancy, error)
	GetOccupancy(ctx context.Context, id int64) (*models.ClassroomOccupancy, error)
}

type dutyTeacherReader interface {
	ListEligible(ctx context.Context, sem models.Semester, division string) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
}

type allocationRepo interface {
	BulkCreate(ctx context.Context, exec sqlx.ExtContext, allocations []models.Allocation) error
	Create(ctx context.Context, alloc *models.Allocation) error
	DeleteByClassroom(ctx context.Context, classroomID int64) (int64, error)
	ListRoomSummaries(ctx context.Context) ([]models.RoomAllocationSummary, error)
	TrackCounts(ctx context.Context, classroomID int64) (*models.RoomTrackCounts, error)
}

type txBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// DutyAllocationService assigns invigilating teachers to classrooms under the
// semester-mixing capacity rules.
type DutyAllocationService struct {
	classrooms  classroomOccupancyReader
	teachers    dutyTeacherReader
	allocations allocationRepo
	tx          txBeginner
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewDutyAllocationService wires the duty allocator dependencies.
func NewDutyAllocationService(
	classrooms classroomOccupancyReader,
	teachers dutyTeacherReader,
	allocations allocationRepo,
	tx txBeginner,
	validate *validator.Validate,
	logger *zap.Logger,
) *DutyAllocationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DutyAllocationService{
		classrooms:  classrooms,
		teachers:    teachers,
		allocations: allocations,
		tx:          tx,
		validator:   validate,
		logger:      logger,
	}
}

// roomAcceptsTrack decides whether one more teacher of the given track may
// enter the room, based on the occupancy snapshot.
//
// Only rooms with students_per_bench 2 or 3 are governed by mixing rules:
// a 2-capacity room takes at most one teacher per track, a 3-capacity room at
// most two. Rooms with any other capacity are never auto-filled, even when
// under capacity; the source system behaves the same way and the intent for
// other capacities is unspecified.
func roomAcceptsTrack(room models.ClassroomOccupancy, sem models.Semester) bool {
	if room.CurrentTeachers >= room.StudentsPerBench {
		return false
	}
	switch room.StudentsPerBench {
	case 2:
		return room.TrackCount(sem) < 1
	case 3:
		return room.TrackCount(sem) < 2
	default:
		return false
	}
}

// pairDivision walks the ordered rooms once, consuming teachers from the
// front of the ordered pool. No backtracking: a room that cannot take the
// track is skipped, and leftover rooms stay unfilled once the pool runs out.
func pairDivision(rooms []models.ClassroomOccupancy, teachers []models.Teacher, sem models.Semester) []models.Allocation {
	pairs := make([]models.Allocation, 0, len(rooms))
	cursor := 0
	for _, room := range rooms {
		if cursor >= len(teachers) {
			break
		}
		if !roomAcceptsTrack(room, sem) {
			continue
		}
		pairs = append(pairs, models.Allocation{
			ID:          uuid.NewString(),
			TeacherID:   teachers[cursor].ID,
			ClassroomID: room.ID,
			Semester:    sem,
		})
		cursor++
	}
	return pairs
}

// AllocateDivision batch-assigns unallocated teachers of one track and
// division to available rooms. All decisions come from one occupancy snapshot
// read at the start of the call; the batch insert runs in a transaction so
// either every pairing lands or none do.
func (s *DutyAllocationService) AllocateDivision(ctx context.Context, req dto.AllocateDivisionRequest) (*dto.AllocationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid allocation payload")
	}
	sem := models.Semester(req.Semester)

	rooms, err := s.classrooms.ListAvailable(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to load available classrooms")
	}
	teachers, err := s.teachers.ListEligible(ctx, sem, req.Division)
	if err != nil {
		return nil, s.storeError(err, "failed to load eligible teachers")
	}

	pairs := pairDivision(rooms, teachers, sem)
	if len(pairs) == 0 {
		return nil, appErrors.Clone(appErrors.ErrEmptyResult, "No valid allocations could be created. Check semester distribution rules.")
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.storeError(err, "failed to open transaction")
	}
	if err := s.allocations.BulkCreate(ctx, tx, pairs); err != nil {
		_ = tx.Rollback()
		return nil, s.storeError(err, "failed to save allocations")
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storeError(err, "failed to commit allocations")
	}

	s.logger.Info("division allocated",
		zap.String("semester", req.Semester),
		zap.String("division", req.Division),
		zap.Int("count", len(pairs)),
	)
	return &dto.AllocationResult{
		Success: true,
		Message: fmt.Sprintf("Created %d allocations", len(pairs)),
	}, nil
}

// ManualAllocate places one teacher into one classroom, enforcing the same
// mixing rules as the batch path against the room's current counts.
func (s *DutyAllocationService) ManualAllocate(ctx context.Context, req dto.ManualAllocateRequest) (*dto.AllocationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Teacher ID and Classroom ID are required")
	}

	teacher, err := s.teachers.FindByID(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return nil, s.storeError(err, "failed to load teacher")
	}

	room, err := s.classrooms.GetOccupancy(ctx, req.ClassroomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Classroom not found")
		}
		return nil, s.storeError(err, "failed to load classroom")
	}

	if room.CurrentTeachers >= room.StudentsPerBench {
		return nil, appErrors.Clone(appErrors.ErrConstraint, "Classroom is already full")
	}

	switch room.StudentsPerBench {
	case 2:
		if (teacher.TeachesSem3 && room.Sem3Count > 0) || (teacher.TeachesSem5 && room.Sem5Count > 0) {
			return nil, appErrors.Clone(appErrors.ErrConstraint, "For 2-capacity rooms, cannot have more than one teacher from the same semester")
		}
	case 3:
		if (teacher.TeachesSem3 && room.Sem3Count >= 2) || (teacher.TeachesSem5 && room.Sem5Count >= 2) {
			return nil, appErrors.Clone(appErrors.ErrConstraint, "For 3-capacity rooms, cannot have more than two teachers from the same semester")
		}
	}

	alloc := &models.Allocation{
		TeacherID:   teacher.ID,
		ClassroomID: room.ID,
		Semester:    teacher.Track(),
	}
	if err := s.allocations.Create(ctx, alloc); err != nil {
		return nil, s.storeError(err, "failed to save allocation")
	}

	return &dto.AllocationResult{Success: true, Message: "Teacher allocated successfully"}, nil
}

// ClearClassroom removes every allocation for one classroom, unconditionally.
func (s *DutyAllocationService) ClearClassroom(ctx context.Context, classroomID int64) (*dto.AllocationResult, error) {
	if _, err := s.allocations.DeleteByClassroom(ctx, classroomID); err != nil {
		return nil, s.storeError(err, "failed to delete allocations")
	}
	return &dto.AllocationResult{Success: true, Message: "Allocations deleted successfully"}, nil
}

// ListAllocations splits room summaries into allocated and unallocated sets.
func (s *DutyAllocationService) ListAllocations(ctx context.Context) (*models.AllocationOverview, error) {
	summaries, err := s.allocations.ListRoomSummaries(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to list allocations")
	}
	overview := &models.AllocationOverview{
		Allocated:   make([]models.RoomAllocationSummary, 0, len(summaries)),
		Unallocated: make([]models.RoomAllocationSummary, 0),
	}
	for _, summary := range summaries {
		if len(summary.TeacherNames) > 0 {
			overview.Allocated = append(overview.Allocated, summary)
		} else {
			overview.Unallocated = append(overview.Unallocated, summary)
		}
	}
	return overview, nil
}

// QuestionPapers derives per-track paper counts for one classroom: benches
// times the number of allocated teachers on the track, reported only when the
// track has at least one teacher.
func (s *DutyAllocationService) QuestionPapers(ctx context.Context, classroomID int64) (*models.QuestionPaperCounts, error) {
	counts, err := s.allocations.TrackCounts(ctx, classroomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Classroom not found")
		}
		return nil, s.storeError(err, "failed to load paper counts")
	}

	result := &models.QuestionPaperCounts{ClassroomName: counts.ClassroomName}
	if counts.Sem3Teachers > 0 {
		papers := counts.NumBenches * counts.Sem3Teachers
		result.Papers.Sem3 = &papers
	}
	if counts.Sem5Teachers > 0 {
		papers := counts.NumBenches * counts.Sem5Teachers
		result.Papers.Sem5 = &papers
	}
	return result, nil
}

func (s *DutyAllocationService) storeError(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
