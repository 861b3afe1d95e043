package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examcell/exam-admin-api/internal/models"
	"github.com/examcell/exam-admin-api/internal/service"
)

type classroomListStub struct {
	classrooms []models.Classroom
}

func (s *classroomListStub) List(ctx context.Context) ([]models.Classroom, error) {
	return s.classrooms, nil
}

type seatingRoomRepoStub struct {
	rooms   []models.SeatingRoom
	exists  bool
	deleted int64
	updated int64
}

func (s *seatingRoomRepoStub) List(ctx context.Context) ([]models.SeatingRoom, error) {
	return s.rooms, nil
}

func (s *seatingRoomRepoStub) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.exists, nil
}

func (s *seatingRoomRepoStub) NextSequence(ctx context.Context) (int, error) {
	return 1, nil
}

func (s *seatingRoomRepoStub) Add(ctx context.Context, room *models.SeatingRoom) error {
	s.rooms = append(s.rooms, *room)
	return nil
}

func (s *seatingRoomRepoStub) DeleteByName(ctx context.Context, name string) (int64, error) {
	return s.deleted, nil
}

func (s *seatingRoomRepoStub) UpdateBenches(ctx context.Context, name string, benches int) (int64, error) {
	return s.updated, nil
}

func newClassroomHandler(repo *seatingRoomRepoStub) *ClassroomHandler {
	svc := service.NewClassroomService(&classroomListStub{}, repo, nil, nil, nil)
	return NewClassroomHandler(svc)
}

func performJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClassroomHandlerAdd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &seatingRoomRepoStub{}
	h := newClassroomHandler(repo)

	r := gin.New()
	r.POST("/classroom-list", h.Add)

	w := performJSON(t, r, http.MethodPost, "/classroom-list", `{"classroom_name":"CLH305","no_of_benches":18}`)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Success)
	assert.Equal(t, "Classroom added successfully!", envelope.Data.Message)
	require.Len(t, repo.rooms, 1)
	assert.Equal(t, "CLH305", repo.rooms[0].ClassroomName)
}

func TestClassroomHandlerAddDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newClassroomHandler(&seatingRoomRepoStub{exists: true})

	r := gin.New()
	r.POST("/classroom-list", h.Add)

	w := performJSON(t, r, http.MethodPost, "/classroom-list", `{"classroom_name":"CLH305","no_of_benches":18}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Classroom with this name already exists.")
}

func TestClassroomHandlerAddInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newClassroomHandler(&seatingRoomRepoStub{})

	r := gin.New()
	r.POST("/classroom-list", h.Add)

	w := performJSON(t, r, http.MethodPost, "/classroom-list", `{"classroom_name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassroomHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newClassroomHandler(&seatingRoomRepoStub{deleted: 1})

	r := gin.New()
	r.DELETE("/classroom-list/:name", h.Delete)

	w := performJSON(t, r, http.MethodDelete, "/classroom-list/CLH305", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Classroom deleted successfully!")
}

func TestClassroomHandlerDeleteMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newClassroomHandler(&seatingRoomRepoStub{})

	r := gin.New()
	r.DELETE("/classroom-list/:name", h.Delete)

	w := performJSON(t, r, http.MethodDelete, "/classroom-list/CLH999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Classroom not found.")
}

func TestClassroomHandlerUpdateBenches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newClassroomHandler(&seatingRoomRepoStub{updated: 1})

	r := gin.New()
	r.PUT("/classroom-list/benches", h.UpdateBenches)

	w := performJSON(t, r, http.MethodPut, "/classroom-list/benches", `{"classroom_name":"CLH305","new_no_of_benches":22}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Number of benches updated successfully!")
}
