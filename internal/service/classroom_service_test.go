package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type mockClassroomList struct {
	classrooms []models.Classroom
	calls      int
}

func (m *mockClassroomList) List(ctx context.Context) ([]models.Classroom, error) {
	m.calls++
	return m.classrooms, nil
}

type mockSeatingRoomRepo struct {
	rooms      []models.SeatingRoom
	exists     bool
	next       int
	added      []models.SeatingRoom
	deleted    int64
	updated    int64
	deletedFor string
}

func (m *mockSeatingRoomRepo) List(ctx context.Context) ([]models.SeatingRoom, error) {
	return m.rooms, nil
}

func (m *mockSeatingRoomRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.exists, nil
}

func (m *mockSeatingRoomRepo) NextSequence(ctx context.Context) (int, error) {
	return m.next, nil
}

func (m *mockSeatingRoomRepo) Add(ctx context.Context, room *models.SeatingRoom) error {
	m.added = append(m.added, *room)
	return nil
}

func (m *mockSeatingRoomRepo) DeleteByName(ctx context.Context, name string) (int64, error) {
	m.deletedFor = name
	return m.deleted, nil
}

func (m *mockSeatingRoomRepo) UpdateBenches(ctx context.Context, name string, benches int) (int64, error) {
	return m.updated, nil
}

// memoryCache is an in-process CacheRepository for exercising the cache-first
// read path without redis.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	payload, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = payload
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func TestListClassroomsCachesResult(t *testing.T) {
	reader := &mockClassroomList{classrooms: []models.Classroom{{ID: 1, Name: "CSC313"}}}
	cache := NewCacheService(newMemoryCache(), nil, time.Minute, nil, true)
	svc := NewClassroomService(reader, &mockSeatingRoomRepo{}, cache, nil, nil)

	first, err := svc.ListClassrooms(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ListClassrooms(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "CSC313", second[0].Name)
	assert.Equal(t, 1, reader.calls)
}

func TestListClassroomsWithCacheDisabled(t *testing.T) {
	reader := &mockClassroomList{classrooms: []models.Classroom{{ID: 1}}}
	cache := NewCacheService(nil, nil, 0, nil, false)
	svc := NewClassroomService(reader, &mockSeatingRoomRepo{}, cache, nil, nil)

	_, err := svc.ListClassrooms(context.Background())
	require.NoError(t, err)
	_, err = svc.ListClassrooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, reader.calls)
}

func TestAddSeatingRoom(t *testing.T) {
	repo := &mockSeatingRoomRepo{next: 4}
	svc := NewClassroomService(&mockClassroomList{}, repo, nil, nil, nil)

	result, err := svc.AddSeatingRoom(context.Background(), dto.AddSeatingRoomRequest{ClassroomName: "CLH305", NoOfBenches: 18})
	require.NoError(t, err)
	assert.Equal(t, "Classroom added successfully!", result.Message)
	require.Len(t, repo.added, 1)
	assert.Equal(t, 4, repo.added[0].SequenceNumber)
	assert.Equal(t, 18, repo.added[0].NoOfBenches)
}

func TestAddSeatingRoomDuplicateName(t *testing.T) {
	svc := NewClassroomService(&mockClassroomList{}, &mockSeatingRoomRepo{exists: true}, nil, nil, nil)

	_, err := svc.AddSeatingRoom(context.Background(), dto.AddSeatingRoomRequest{ClassroomName: "CLH305", NoOfBenches: 18})
	require.Error(t, err)
	assert.Equal(t, "Classroom with this name already exists.", appErrors.FromError(err).Message)
}

func TestDeleteSeatingRoom(t *testing.T) {
	repo := &mockSeatingRoomRepo{deleted: 1}
	svc := NewClassroomService(&mockClassroomList{}, repo, nil, nil, nil)

	result, err := svc.DeleteSeatingRoom(context.Background(), "CLH305")
	require.NoError(t, err)
	assert.Equal(t, "Classroom deleted successfully!", result.Message)
	assert.Equal(t, "CLH305", repo.deletedFor)
}

func TestDeleteSeatingRoomMissing(t *testing.T) {
	svc := NewClassroomService(&mockClassroomList{}, &mockSeatingRoomRepo{}, nil, nil, nil)

	_, err := svc.DeleteSeatingRoom(context.Background(), "CLH999")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Classroom not found.", appErr.Message)
}

func TestDeleteSeatingRoomRequiresName(t *testing.T) {
	svc := NewClassroomService(&mockClassroomList{}, &mockSeatingRoomRepo{}, nil, nil, nil)

	_, err := svc.DeleteSeatingRoom(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "Classroom name is required.", appErrors.FromError(err).Message)
}

func TestUpdateBenches(t *testing.T) {
	svc := NewClassroomService(&mockClassroomList{}, &mockSeatingRoomRepo{updated: 1}, nil, nil, nil)

	result, err := svc.UpdateBenches(context.Background(), dto.UpdateBenchesRequest{ClassroomName: "CLH305", NewNoOfBenches: 22})
	require.NoError(t, err)
	assert.Equal(t, "Number of benches updated successfully!", result.Message)
}

func TestUpdateBenchesMissingRoom(t *testing.T) {
	svc := NewClassroomService(&mockClassroomList{}, &mockSeatingRoomRepo{}, nil, nil, nil)

	_, err := svc.UpdateBenches(context.Background(), dto.UpdateBenchesRequest{ClassroomName: "CLH999", NewNoOfBenches: 22})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
