package service

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type mockClassroomReader struct {
	rooms     []models.ClassroomOccupancy
	occupancy map[int64]*models.ClassroomOccupancy
	err       error
}

func (m *mockClassroomReader) ListAvailable(ctx context.Context) ([]models.ClassroomOccupancy, error) {
	return m.rooms, m.err
}

func (m *mockClassroomReader) GetOccupancy(ctx context.Context, id int64) (*models.ClassroomOccupancy, error) {
	if room, ok := m.occupancy[id]; ok {
		return room, nil
	}
	return nil, sql.ErrNoRows
}

type mockTeacherReader struct {
	eligible []models.Teacher
	byID     map[int64]*models.Teacher
	err      error
}

func (m *mockTeacherReader) ListEligible(ctx context.Context, sem models.Semester, division string) ([]models.Teacher, error) {
	return m.eligible, m.err
}

func (m *mockTeacherReader) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if t, ok := m.byID[id]; ok {
		return t, nil
	}
	return nil, sql.ErrNoRows
}

type mockAllocationRepo struct {
	bulkCreated []models.Allocation
	created     []models.Allocation
	deleted     []int64
	summaries   []models.RoomAllocationSummary
	trackCounts *models.RoomTrackCounts
	bulkErr     error
	createErr   error
}

func (m *mockAllocationRepo) BulkCreate(ctx context.Context, exec sqlx.ExtContext, allocations []models.Allocation) error {
	if m.bulkErr != nil {
		return m.bulkErr
	}
	m.bulkCreated = append(m.bulkCreated, allocations...)
	return nil
}

func (m *mockAllocationRepo) Create(ctx context.Context, alloc *models.Allocation) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, *alloc)
	return nil
}

func (m *mockAllocationRepo) DeleteByClassroom(ctx context.Context, classroomID int64) (int64, error) {
	m.deleted = append(m.deleted, classroomID)
	return 1, nil
}

func (m *mockAllocationRepo) ListRoomSummaries(ctx context.Context) ([]models.RoomAllocationSummary, error) {
	return m.summaries, nil
}

func (m *mockAllocationRepo) TrackCounts(ctx context.Context, classroomID int64) (*models.RoomTrackCounts, error) {
	if m.trackCounts == nil {
		return nil, sql.ErrNoRows
	}
	return m.trackCounts, nil
}

func newTxMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func emptyRoom(id int64, perBench int) models.ClassroomOccupancy {
	return models.ClassroomOccupancy{
		Classroom: models.Classroom{ID: id, StudentsPerBench: perBench, NumBenches: 30},
	}
}

func TestRoomAcceptsTrackCapacityRules(t *testing.T) {
	twoCap := emptyRoom(1, 2)
	assert.True(t, roomAcceptsTrack(twoCap, models.SemesterThird))

	twoCap.CurrentTeachers = 1
	twoCap.Sem3Count = 1
	assert.False(t, roomAcceptsTrack(twoCap, models.SemesterThird))
	assert.True(t, roomAcceptsTrack(twoCap, models.SemesterFifth))

	threeCap := emptyRoom(2, 3)
	threeCap.CurrentTeachers = 2
	threeCap.Sem5Count = 2
	assert.False(t, roomAcceptsTrack(threeCap, models.SemesterFifth))
	assert.True(t, roomAcceptsTrack(threeCap, models.SemesterThird))

	threeCap.CurrentTeachers = 3
	assert.False(t, roomAcceptsTrack(threeCap, models.SemesterThird))
}

func TestRoomAcceptsTrackSkipsOtherCapacities(t *testing.T) {
	for _, perBench := range []int{1, 4, 5} {
		room := emptyRoom(1, perBench)
		assert.False(t, roomAcceptsTrack(room, models.SemesterThird), "per-bench %d", perBench)
	}
}

func TestPairDivisionSinglePass(t *testing.T) {
	rooms := []models.ClassroomOccupancy{
		emptyRoom(1, 2),
		{Classroom: models.Classroom{ID: 2, StudentsPerBench: 2}, CurrentTeachers: 1, Sem3Count: 1},
		emptyRoom(3, 4),
		emptyRoom(4, 3),
	}
	teachers := []models.Teacher{
		{ID: 10, Name: "A", TeachesSem3: true},
		{ID: 11, Name: "B", TeachesSem3: true},
		{ID: 12, Name: "C", TeachesSem3: true},
	}

	pairs := pairDivision(rooms, teachers, models.SemesterThird)
	require.Len(t, pairs, 2)
	assert.Equal(t, int64(10), pairs[0].TeacherID)
	assert.Equal(t, int64(1), pairs[0].ClassroomID)
	assert.Equal(t, int64(11), pairs[1].TeacherID)
	assert.Equal(t, int64(4), pairs[1].ClassroomID)
	for _, p := range pairs {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, models.SemesterThird, p.Semester)
	}
}

func TestPairDivisionStopsWhenPoolDrained(t *testing.T) {
	rooms := []models.ClassroomOccupancy{emptyRoom(1, 2), emptyRoom(2, 2)}
	teachers := []models.Teacher{{ID: 10, TeachesSem5: true}}

	pairs := pairDivision(rooms, teachers, models.SemesterFifth)
	require.Len(t, pairs, 1)
	assert.Equal(t, int64(1), pairs[0].ClassroomID)
}

func TestAllocateDivisionCommits(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	mock.ExpectCommit()

	allocs := &mockAllocationRepo{}
	svc := NewDutyAllocationService(
		&mockClassroomReader{rooms: []models.ClassroomOccupancy{emptyRoom(1, 2)}},
		&mockTeacherReader{eligible: []models.Teacher{{ID: 7, TeachesSem3: true}}},
		allocs,
		db,
		nil,
		nil,
	)

	result, err := svc.AllocateDivision(context.Background(), dto.AllocateDivisionRequest{Semester: "3", Division: "A"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Created 1 allocations", result.Message)
	assert.Len(t, allocs.bulkCreated, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllocateDivisionEmptyResult(t *testing.T) {
	svc := NewDutyAllocationService(
		&mockClassroomReader{rooms: []models.ClassroomOccupancy{emptyRoom(1, 4)}},
		&mockTeacherReader{eligible: []models.Teacher{{ID: 7, TeachesSem3: true}}},
		&mockAllocationRepo{},
		nil,
		nil,
		nil,
	)

	_, err := svc.AllocateDivision(context.Background(), dto.AllocateDivisionRequest{Semester: "3", Division: "A"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrEmptyResult.Code, appErr.Code)
	assert.Equal(t, "No valid allocations could be created. Check semester distribution rules.", appErr.Message)
}

func TestAllocateDivisionRollsBackOnInsertFailure(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := NewDutyAllocationService(
		&mockClassroomReader{rooms: []models.ClassroomOccupancy{emptyRoom(1, 2)}},
		&mockTeacherReader{eligible: []models.Teacher{{ID: 7, TeachesSem3: true}}},
		&mockAllocationRepo{bulkErr: assert.AnError},
		db,
		nil,
		nil,
	)

	_, err := svc.AllocateDivision(context.Background(), dto.AllocateDivisionRequest{Semester: "3", Division: "A"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllocateDivisionRejectsBadSemester(t *testing.T) {
	svc := NewDutyAllocationService(&mockClassroomReader{}, &mockTeacherReader{}, &mockAllocationRepo{}, nil, nil, nil)

	_, err := svc.AllocateDivision(context.Background(), dto.AllocateDivisionRequest{Semester: "4", Division: "A"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestManualAllocateSuccess(t *testing.T) {
	allocs := &mockAllocationRepo{}
	svc := NewDutyAllocationService(
		&mockClassroomReader{occupancy: map[int64]*models.ClassroomOccupancy{
			2: {Classroom: models.Classroom{ID: 2, StudentsPerBench: 2}},
		}},
		&mockTeacherReader{byID: map[int64]*models.Teacher{1: {ID: 1, TeachesSem5: true}}},
		allocs,
		nil,
		nil,
		nil,
	)

	result, err := svc.ManualAllocate(context.Background(), dto.ManualAllocateRequest{TeacherID: 1, ClassroomID: 2})
	require.NoError(t, err)
	assert.Equal(t, "Teacher allocated successfully", result.Message)
	require.Len(t, allocs.created, 1)
	assert.Equal(t, models.SemesterFifth, allocs.created[0].Semester)
}

func TestManualAllocateTeacherNotFound(t *testing.T) {
	svc := NewDutyAllocationService(&mockClassroomReader{}, &mockTeacherReader{}, &mockAllocationRepo{}, nil, nil, nil)

	_, err := svc.ManualAllocate(context.Background(), dto.ManualAllocateRequest{TeacherID: 99, ClassroomID: 1})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Teacher not found", appErr.Message)
}

func TestManualAllocateFullRoom(t *testing.T) {
	svc := NewDutyAllocationService(
		&mockClassroomReader{occupancy: map[int64]*models.ClassroomOccupancy{
			2: {Classroom: models.Classroom{ID: 2, StudentsPerBench: 2}, CurrentTeachers: 2, Sem3Count: 1, Sem5Count: 1},
		}},
		&mockTeacherReader{byID: map[int64]*models.Teacher{1: {ID: 1, TeachesSem3: true}}},
		&mockAllocationRepo{},
		nil,
		nil,
		nil,
	)

	_, err := svc.ManualAllocate(context.Background(), dto.ManualAllocateRequest{TeacherID: 1, ClassroomID: 2})
	require.Error(t, err)
	assert.Equal(t, "Classroom is already full", appErrors.FromError(err).Message)
}

func TestManualAllocateTrackConflicts(t *testing.T) {
	rooms := map[int64]*models.ClassroomOccupancy{
		2: {Classroom: models.Classroom{ID: 2, StudentsPerBench: 2}, CurrentTeachers: 1, Sem3Count: 1},
		3: {Classroom: models.Classroom{ID: 3, StudentsPerBench: 3}, CurrentTeachers: 2, Sem5Count: 2},
	}
	svc := NewDutyAllocationService(
		&mockClassroomReader{occupancy: rooms},
		&mockTeacherReader{byID: map[int64]*models.Teacher{
			1: {ID: 1, TeachesSem3: true},
			2: {ID: 2, TeachesSem5: true},
		}},
		&mockAllocationRepo{},
		nil,
		nil,
		nil,
	)

	_, err := svc.ManualAllocate(context.Background(), dto.ManualAllocateRequest{TeacherID: 1, ClassroomID: 2})
	require.Error(t, err)
	assert.Equal(t, "For 2-capacity rooms, cannot have more than one teacher from the same semester", appErrors.FromError(err).Message)

	_, err = svc.ManualAllocate(context.Background(), dto.ManualAllocateRequest{TeacherID: 2, ClassroomID: 3})
	require.Error(t, err)
	assert.Equal(t, "For 3-capacity rooms, cannot have more than two teachers from the same semester", appErrors.FromError(err).Message)
}

func TestClearClassroom(t *testing.T) {
	allocs := &mockAllocationRepo{}
	svc := NewDutyAllocationService(&mockClassroomReader{}, &mockTeacherReader{}, allocs, nil, nil, nil)

	result, err := svc.ClearClassroom(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Allocations deleted successfully", result.Message)
	assert.Equal(t, []int64{5}, allocs.deleted)
}

func TestListAllocationsSplitsByOccupancy(t *testing.T) {
	allocs := &mockAllocationRepo{summaries: []models.RoomAllocationSummary{
		{ClassroomName: "CSC313", TeacherNames: []string{"A", "B"}},
		{ClassroomName: "CLH208"},
	}}
	svc := NewDutyAllocationService(&mockClassroomReader{}, &mockTeacherReader{}, allocs, nil, nil, nil)

	overview, err := svc.ListAllocations(context.Background())
	require.NoError(t, err)
	require.Len(t, overview.Allocated, 1)
	require.Len(t, overview.Unallocated, 1)
	assert.Equal(t, "CSC313", overview.Allocated[0].ClassroomName)
	assert.Equal(t, "CLH208", overview.Unallocated[0].ClassroomName)
}

func TestQuestionPapersOnlyForOccupiedTracks(t *testing.T) {
	allocs := &mockAllocationRepo{trackCounts: &models.RoomTrackCounts{
		ClassroomName: "CSC313",
		NumBenches:    40,
		Sem3Teachers:  1,
	}}
	svc := NewDutyAllocationService(&mockClassroomReader{}, &mockTeacherReader{}, allocs, nil, nil, nil)

	counts, err := svc.QuestionPapers(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, counts.Papers.Sem3)
	assert.Equal(t, 40, *counts.Papers.Sem3)
	assert.Nil(t, counts.Papers.Sem5)
}

func TestQuestionPapersClassroomNotFound(t *testing.T) {
	svc := NewDutyAllocationService(&mockClassroomReader{}, &mockTeacherReader{}, &mockAllocationRepo{}, nil, nil, nil)

	_, err := svc.QuestionPapers(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "Classroom not found", appErrors.FromError(err).Message)
}
