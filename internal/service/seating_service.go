package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/examcell/exam-admin-api/internal/models"
	appErrors "github.com/examcell/exam-admin-api/pkg/errors"
)

type seatingRoomReader interface {
	List(ctx context.Context) ([]models.SeatingRoom, error)
}

type studentReader interface {
	ListThirdSem(ctx context.Context) ([]models.Student, error)
	ListFifthSem(ctx context.Context) ([]models.Student, error)
}

type seatArrangementStore interface {
	Replace(ctx context.Context, exec sqlx.ExtContext, records []models.SeatArrangement) error
	List(ctx context.Context) ([]models.SeatArrangement, error)
}

// SeatingService computes the per-room seating arrangement from the two
// student pools and the ordered seating-room list.
type SeatingService struct {
	rooms        seatingRoomReader
	students     studentReader
	arrangements seatArrangementStore
	tx           txBeginner
	logger       *zap.Logger
}

// NewSeatingService wires the seating allocator dependencies.
func NewSeatingService(
	rooms seatingRoomReader,
	students studentReader,
	arrangements seatArrangementStore,
	tx txBeginner,
	logger *zap.Logger,
) *SeatingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeatingService{
		rooms:        rooms,
		students:     students,
		arrangements: arrangements,
		tx:           tx,
		logger:       logger,
	}
}

// rollBand is one division band: students sharing the same hundreds digit,
// held in ascending roll order.
type rollBand struct {
	key   int
	rolls []int
}

// bandQueue drains one band at a time, front to back. Ownership is exclusive
// to the allocation pass; nothing else mutates it.
type bandQueue struct {
	bands []rollBand
}

// newBandQueue groups a pre-sorted student pool into bands keyed by
// rollNo/100, preserving first-seen band order.
func newBandQueue(students []models.Student) *bandQueue {
	q := &bandQueue{}
	for _, s := range students {
		key := s.Band()
		if n := len(q.bands); n > 0 && q.bands[n-1].key == key {
			q.bands[n-1].rolls = append(q.bands[n-1].rolls, s.RollNo)
			continue
		}
		q.bands = append(q.bands, rollBand{key: key, rolls: []int{s.RollNo}})
	}
	return q
}

// drawUpTo pops at most n rolls from the front band. A draw never crosses a
// band boundary; a drained band is dropped so the next draw starts the next
// band.
func (q *bandQueue) drawUpTo(n int) []int {
	if len(q.bands) == 0 || n <= 0 {
		return nil
	}
	band := &q.bands[0]
	if n > len(band.rolls) {
		n = len(band.rolls)
	}
	drawn := band.rolls[:n]
	band.rolls = band.rolls[n:]
	if len(band.rolls) == 0 {
		q.bands = q.bands[1:]
	}
	return drawn
}

// rangeLabel renders a drawn slice as "first-last", or the EMPTY sentinel
// when nothing was drawn.
func rangeLabel(rolls []int) string {
	if len(rolls) == 0 {
		return models.EmptyRange
	}
	return fmt.Sprintf("%d-%d", rolls[0], rolls[len(rolls)-1])
}

// paperCount is drawn+2 spare papers, present only when something was drawn.
func paperCount(drawn int) *int {
	if drawn == 0 {
		return nil
	}
	papers := drawn + 2
	return &papers
}

// ComputeArrangement recomputes the seating snapshot. Rooms are walked in
// sequence order; each room draws up to its bench count from the current band
// of each track independently. The result fully replaces the stored snapshot
// in one transaction and is returned to the caller.
func (s *SeatingService) ComputeArrangement(ctx context.Context) ([]models.SeatArrangement, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to load seating rooms")
	}
	thirdPool, err := s.students.ListThirdSem(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to load third-sem students")
	}
	fifthPool, err := s.students.ListFifthSem(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to load fifth-sem students")
	}

	thirdQueue := newBandQueue(thirdPool)
	fifthQueue := newBandQueue(fifthPool)

	records := make([]models.SeatArrangement, 0, len(rooms))
	for _, room := range rooms {
		third := thirdQueue.drawUpTo(room.NoOfBenches)
		fifth := fifthQueue.drawUpTo(room.NoOfBenches)
		records = append(records, models.SeatArrangement{
			ClassroomName:       room.ClassroomName,
			ThirdSemRollNumbers: rangeLabel(third),
			FifthSemRollNumbers: rangeLabel(fifth),
			ThirdSemPaperCount:  paperCount(len(third)),
			FifthSemPaperCount:  paperCount(len(fifth)),
		})
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, s.storeError(err, "failed to open transaction")
	}
	if err := s.arrangements.Replace(ctx, tx, records); err != nil {
		_ = tx.Rollback()
		return nil, s.storeError(err, "failed to save seat arrangement")
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storeError(err, "failed to commit seat arrangement")
	}

	s.logger.Info("seating arrangement recomputed",
		zap.Int("rooms", len(records)),
		zap.Int("third_sem_students", len(thirdPool)),
		zap.Int("fifth_sem_students", len(fifthPool)),
	)
	return records, nil
}

// CurrentArrangement returns the persisted snapshot without recomputing.
func (s *SeatingService) CurrentArrangement(ctx context.Context) ([]models.SeatArrangement, error) {
	records, err := s.arrangements.List(ctx)
	if err != nil {
		return nil, s.storeError(err, "failed to load seat arrangement")
	}
	return records, nil
}

func (s *SeatingService) storeError(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
