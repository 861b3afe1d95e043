package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examcell/exam-admin-api/internal/models"
	"github.com/examcell/exam-admin-api/internal/service"
)

type occupancyStub struct {
	rooms     []models.ClassroomOccupancy
	occupancy map[int64]*models.ClassroomOccupancy
}

func (s *occupancyStub) ListAvailable(ctx context.Context) ([]models.ClassroomOccupancy, error) {
	return s.rooms, nil
}

func (s *occupancyStub) GetOccupancy(ctx context.Context, id int64) (*models.ClassroomOccupancy, error) {
	if room, ok := s.occupancy[id]; ok {
		return room, nil
	}
	return nil, sql.ErrNoRows
}

type teacherReaderStub struct {
	eligible []models.Teacher
	byID     map[int64]*models.Teacher
}

func (s *teacherReaderStub) ListEligible(ctx context.Context, sem models.Semester, division string) ([]models.Teacher, error) {
	return s.eligible, nil
}

func (s *teacherReaderStub) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if t, ok := s.byID[id]; ok {
		return t, nil
	}
	return nil, sql.ErrNoRows
}

type allocationRepoStub struct {
	created   []models.Allocation
	deleted   []int64
	summaries []models.RoomAllocationSummary
}

func (s *allocationRepoStub) BulkCreate(ctx context.Context, exec sqlx.ExtContext, allocations []models.Allocation) error {
	s.created = append(s.created, allocations...)
	return nil
}

func (s *allocationRepoStub) Create(ctx context.Context, alloc *models.Allocation) error {
	s.created = append(s.created, *alloc)
	return nil
}

func (s *allocationRepoStub) DeleteByClassroom(ctx context.Context, classroomID int64) (int64, error) {
	s.deleted = append(s.deleted, classroomID)
	return 1, nil
}

func (s *allocationRepoStub) ListRoomSummaries(ctx context.Context) ([]models.RoomAllocationSummary, error) {
	return s.summaries, nil
}

func (s *allocationRepoStub) TrackCounts(ctx context.Context, classroomID int64) (*models.RoomTrackCounts, error) {
	return nil, sql.ErrNoRows
}

func newAllocationHandler(classrooms *occupancyStub, teachers *teacherReaderStub, allocs *allocationRepoStub) *AllocationHandler {
	svc := service.NewDutyAllocationService(classrooms, teachers, allocs, nil, nil, nil)
	return NewAllocationHandler(svc)
}

func TestAllocationHandlerManualAllocate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	allocs := &allocationRepoStub{}
	h := newAllocationHandler(
		&occupancyStub{occupancy: map[int64]*models.ClassroomOccupancy{
			2: {Classroom: models.Classroom{ID: 2, StudentsPerBench: 2}},
		}},
		&teacherReaderStub{byID: map[int64]*models.Teacher{1: {ID: 1, TeachesSem3: true}}},
		allocs,
	)

	r := gin.New()
	r.POST("/manual-allocate", h.ManualAllocate)

	w := performJSON(t, r, http.MethodPost, "/manual-allocate", `{"teacherId":1,"classroomId":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Teacher allocated successfully")
	assert.Len(t, allocs.created, 1)
}

func TestAllocationHandlerManualAllocateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAllocationHandler(&occupancyStub{}, &teacherReaderStub{}, &allocationRepoStub{})

	r := gin.New()
	r.POST("/manual-allocate", h.ManualAllocate)

	w := performJSON(t, r, http.MethodPost, "/manual-allocate", `{"teacherId":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Teacher ID and Classroom ID are required")
}

func TestAllocationHandlerManualAllocateUnknownTeacher(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAllocationHandler(&occupancyStub{}, &teacherReaderStub{}, &allocationRepoStub{})

	r := gin.New()
	r.POST("/manual-allocate", h.ManualAllocate)

	w := performJSON(t, r, http.MethodPost, "/manual-allocate", `{"teacherId":42,"classroomId":2}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Teacher not found")
}

func TestAllocationHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAllocationHandler(&occupancyStub{}, &teacherReaderStub{}, &allocationRepoStub{
		summaries: []models.RoomAllocationSummary{
			{ClassroomName: "CSC313", TeacherNames: []string{"Prof. A"}},
			{ClassroomName: "CLH208"},
		},
	})

	r := gin.New()
	r.GET("/allocations", h.List)

	w := performJSON(t, r, http.MethodGet, "/allocations", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allocated"`)
	assert.Contains(t, w.Body.String(), `"unallocated"`)
	assert.Contains(t, w.Body.String(), "CSC313")
}

func TestAllocationHandlerClearClassroomBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAllocationHandler(&occupancyStub{}, &teacherReaderStub{}, &allocationRepoStub{})

	r := gin.New()
	r.DELETE("/allocations/classroom/:classroomId", h.ClearClassroom)

	w := performJSON(t, r, http.MethodDelete, "/allocations/classroom/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid classroom id")
}

func TestAllocationHandlerClearClassroom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	allocs := &allocationRepoStub{}
	h := newAllocationHandler(&occupancyStub{}, &teacherReaderStub{}, allocs)

	r := gin.New()
	r.DELETE("/allocations/classroom/:classroomId", h.ClearClassroom)

	w := performJSON(t, r, http.MethodDelete, "/allocations/classroom/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{7}, allocs.deleted)
}
