package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examcell/exam-admin-api/internal/models"
)

type mockSeatingRooms struct {
	rooms []models.SeatingRoom
	err   error
}

func (m *mockSeatingRooms) List(ctx context.Context) ([]models.SeatingRoom, error) {
	return m.rooms, m.err
}

type mockStudentPools struct {
	third []models.Student
	fifth []models.Student
}

func (m *mockStudentPools) ListThirdSem(ctx context.Context) ([]models.Student, error) {
	return m.third, nil
}

func (m *mockStudentPools) ListFifthSem(ctx context.Context) ([]models.Student, error) {
	return m.fifth, nil
}

type mockArrangementStore struct {
	replaced []models.SeatArrangement
	stored   []models.SeatArrangement
}

func (m *mockArrangementStore) Replace(ctx context.Context, exec sqlx.ExtContext, records []models.SeatArrangement) error {
	m.replaced = records
	return nil
}

func (m *mockArrangementStore) List(ctx context.Context) ([]models.SeatArrangement, error) {
	return m.stored, nil
}

func rollsToStudents(rolls ...int) []models.Student {
	students := make([]models.Student, 0, len(rolls))
	for _, r := range rolls {
		students = append(students, models.Student{RollNo: r})
	}
	return students
}

func TestBandQueueGroupsByHundreds(t *testing.T) {
	q := newBandQueue(rollsToStudents(101, 102, 145, 201, 203, 301))
	require.Len(t, q.bands, 3)
	assert.Equal(t, []int{101, 102, 145}, q.bands[0].rolls)
	assert.Equal(t, []int{201, 203}, q.bands[1].rolls)
	assert.Equal(t, []int{301}, q.bands[2].rolls)
}

func TestDrawUpToNeverCrossesBands(t *testing.T) {
	q := newBandQueue(rollsToStudents(101, 102, 103, 201, 202))

	first := q.drawUpTo(5)
	assert.Equal(t, []int{101, 102, 103}, first)

	second := q.drawUpTo(5)
	assert.Equal(t, []int{201, 202}, second)

	assert.Nil(t, q.drawUpTo(5))
}

func TestDrawUpToPartialBand(t *testing.T) {
	q := newBandQueue(rollsToStudents(101, 102, 103))

	assert.Equal(t, []int{101, 102}, q.drawUpTo(2))
	assert.Equal(t, []int{103}, q.drawUpTo(2))
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "101-145", rangeLabel([]int{101, 120, 145}))
	assert.Equal(t, "101-101", rangeLabel([]int{101}))
	assert.Equal(t, models.EmptyRange, rangeLabel(nil))
}

func TestPaperCount(t *testing.T) {
	assert.Nil(t, paperCount(0))
	require.NotNil(t, paperCount(3))
	assert.Equal(t, 5, *paperCount(3))
}

func TestComputeArrangement(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	mock.ExpectCommit()

	store := &mockArrangementStore{}
	svc := NewSeatingService(
		&mockSeatingRooms{rooms: []models.SeatingRoom{
			{SequenceNumber: 1, ClassroomName: "CLH201", NoOfBenches: 2},
			{SequenceNumber: 2, ClassroomName: "CLH202", NoOfBenches: 3},
		}},
		&mockStudentPools{
			third: rollsToStudents(101, 102, 103, 201),
			fifth: rollsToStudents(501, 502),
		},
		store,
		db,
		nil,
	)

	records, err := svc.ComputeArrangement(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "CLH201", first.ClassroomName)
	assert.Equal(t, "101-102", first.ThirdSemRollNumbers)
	assert.Equal(t, "501-502", first.FifthSemRollNumbers)
	require.NotNil(t, first.ThirdSemPaperCount)
	assert.Equal(t, 4, *first.ThirdSemPaperCount)
	require.NotNil(t, first.FifthSemPaperCount)
	assert.Equal(t, 4, *first.FifthSemPaperCount)

	// The second room takes the remainder of band 1 only; 201 waits for a
	// later room even though a bench is free.
	second := records[1]
	assert.Equal(t, "103-103", second.ThirdSemRollNumbers)
	require.NotNil(t, second.ThirdSemPaperCount)
	assert.Equal(t, 3, *second.ThirdSemPaperCount)
	assert.Equal(t, models.EmptyRange, second.FifthSemRollNumbers)
	assert.Nil(t, second.FifthSemPaperCount)

	assert.Equal(t, records, store.replaced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComputeArrangementEmptyPools(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewSeatingService(
		&mockSeatingRooms{rooms: []models.SeatingRoom{{SequenceNumber: 1, ClassroomName: "CLH201", NoOfBenches: 10}}},
		&mockStudentPools{},
		&mockArrangementStore{},
		db,
		nil,
	)

	records, err := svc.ComputeArrangement(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.EmptyRange, records[0].ThirdSemRollNumbers)
	assert.Equal(t, models.EmptyRange, records[0].FifthSemRollNumbers)
	assert.Nil(t, records[0].ThirdSemPaperCount)
}

func TestCurrentArrangementReadsSnapshot(t *testing.T) {
	store := &mockArrangementStore{stored: []models.SeatArrangement{{ClassroomName: "CLH201"}}}
	svc := NewSeatingService(&mockSeatingRooms{}, &mockStudentPools{}, store, nil, nil)

	records, err := svc.CurrentArrangement(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CLH201", records[0].ClassroomName)
}
