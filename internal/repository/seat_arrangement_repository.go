package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// SeatArrangementRepository persists the computed seating snapshot.
type SeatArrangementRepository struct {
	db *sqlx.DB
}

// NewSeatArrangementRepository constructs a SeatArrangementRepository.
func NewSeatArrangementRepository(db *sqlx.DB) *SeatArrangementRepository {
	return &SeatArrangementRepository{db: db}
}

// Replace overwrites the stored snapshot with the freshly computed one.
// The snapshot is a materialisation of the allocator output, never edited in
// place, so a full delete-and-insert is the whole lifecycle.
func (r *SeatArrangementRepository) Replace(ctx context.Context, exec sqlx.ExtContext, records []models.SeatArrangement) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM seat_arrangement`); err != nil {
		return fmt.Errorf("clear seat arrangement: %w", err)
	}
	const query = `INSERT INTO seat_arrangement
		(classroom_name, third_sem_roll_numbers, fifth_sem_roll_numbers, third_sem_paper_count, fifth_sem_paper_count)
		VALUES ($1, $2, $3, $4, $5)`
	for _, rec := range records {
		_, err := exec.ExecContext(ctx, query,
			rec.ClassroomName,
			rec.ThirdSemRollNumbers,
			rec.FifthSemRollNumbers,
			rec.ThirdSemPaperCount,
			rec.FifthSemPaperCount,
		)
		if err != nil {
			return fmt.Errorf("insert seat arrangement for %s: %w", rec.ClassroomName, err)
		}
	}
	return nil
}

// List returns the stored snapshot, if any.
func (r *SeatArrangementRepository) List(ctx context.Context) ([]models.SeatArrangement, error) {
	const query = `SELECT classroom_name, third_sem_roll_numbers, fifth_sem_roll_numbers, third_sem_paper_count, fifth_sem_paper_count
		FROM seat_arrangement`
	var records []models.SeatArrangement
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list seat arrangement: %w", err)
	}
	return records, nil
}
