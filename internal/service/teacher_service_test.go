package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type mockTeacherLister struct {
	bySemester  []models.Teacher
	all         []models.Teacher
	unallocated []models.Teacher
	lastSem     models.Semester
}

func (m *mockTeacherLister) ListBySemester(ctx context.Context, sem models.Semester) ([]models.Teacher, error) {
	m.lastSem = sem
	return m.bySemester, nil
}

func (m *mockTeacherLister) ListAll(ctx context.Context) ([]models.Teacher, error) {
	return m.all, nil
}

func (m *mockTeacherLister) ListUnallocated(ctx context.Context) ([]models.Teacher, error) {
	return m.unallocated, nil
}

type mockAvailableRooms struct {
	rooms []models.ClassroomOccupancy
}

func (m *mockAvailableRooms) ListAvailable(ctx context.Context) ([]models.ClassroomOccupancy, error) {
	return m.rooms, nil
}

type mockDetailSource struct {
	details []models.TeacherDetail
	err     error
}

func (m *mockDetailSource) TeacherDetails() ([]models.TeacherDetail, error) {
	return m.details, m.err
}

func TestTeacherListBySemester(t *testing.T) {
	teachers := &mockTeacherLister{bySemester: []models.Teacher{{ID: 1, Name: "Prof. A", TeachesSem3: true}}}
	svc := NewTeacherService(teachers, &mockAvailableRooms{}, &mockDetailSource{}, nil)

	list, err := svc.ListBySemester(context.Background(), models.SemesterThird)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, models.SemesterThird, teachers.lastSem)
}

func TestTeacherListBySemesterRejectsUnknownTrack(t *testing.T) {
	svc := NewTeacherService(&mockTeacherLister{}, &mockAvailableRooms{}, &mockDetailSource{}, nil)

	_, err := svc.ListBySemester(context.Background(), models.Semester("4"))
	require.Error(t, err)
	assert.Equal(t, "Invalid semester", appErrors.FromError(err).Message)
}

func TestTeacherDetailsReportsReadFailure(t *testing.T) {
	svc := NewTeacherService(&mockTeacherLister{}, &mockAvailableRooms{}, &mockDetailSource{err: assert.AnError}, nil)

	_, err := svc.Details(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch teacher details", appErrors.FromError(err).Message)
}

func TestTeacherAvailableClassrooms(t *testing.T) {
	rooms := &mockAvailableRooms{rooms: []models.ClassroomOccupancy{
		{Classroom: models.Classroom{ID: 1, Name: "CSC313"}, CurrentTeachers: 1},
	}}
	svc := NewTeacherService(&mockTeacherLister{}, rooms, &mockDetailSource{}, nil)

	list, err := svc.ListAvailableClassrooms(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CSC313", list[0].Name)
}

func TestFacultyListCachesResult(t *testing.T) {
	reader := &countingFacultyReader{members: []models.FacultyMember{{ID: 1, Name: "Dr. A", Designation: "Professor"}}}
	cache := NewCacheService(newMemoryCache(), nil, 0, nil, true)
	svc := NewFacultyService(reader, cache, 0, nil)

	first, err := svc.ListInvigilators(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ListInvigilators(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dr. A", second[0].Name)
	assert.Equal(t, 1, reader.calls)
}

type countingFacultyReader struct {
	members []models.FacultyMember
	calls   int
}

func (m *countingFacultyReader) ListInvigilators(ctx context.Context) ([]models.FacultyMember, error) {
	m.calls++
	return m.members, nil
}
