package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
)

// BookletRepository manages answer-booklet assignments.
type BookletRepository struct {
	db *sqlx.DB
}

// NewBookletRepository constructs a BookletRepository.
func NewBookletRepository(db *sqlx.DB) *BookletRepository {
	return &BookletRepository{db: db}
}

// Replace swaps the full booklet set for a newly generated batch.
func (r *BookletRepository) Replace(ctx context.Context, exec sqlx.ExtContext, booklets []models.Booklet) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM booklets`); err != nil {
		return fmt.Errorf("clear booklets: %w", err)
	}
	const query = `INSERT INTO booklets (booklet_id, roll_number, division, course, semester, isa_exam_number)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, b := range booklets {
		if _, err := exec.ExecContext(ctx, query, b.BookletID, b.RollNumber, b.Division, b.Course, b.Semester, b.ISAExamNumber); err != nil {
			return fmt.Errorf("insert booklet %s: %w", b.BookletID, err)
		}
	}
	return nil
}

// List returns booklets matching the filter, ordered by roll number.
func (r *BookletRepository) List(ctx context.Context, filter dto.BookletFilter) ([]models.Booklet, error) {
	base := "SELECT booklet_id, roll_number, division, course, semester, isa_exam_number FROM booklets WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Semester != "" {
		conditions = append(conditions, fmt.Sprintf("semester = $%d", len(args)+1))
		args = append(args, filter.Semester)
	}
	if filter.Division != "" {
		conditions = append(conditions, fmt.Sprintf("division = $%d", len(args)+1))
		args = append(args, filter.Division)
	}
	if filter.Course != "" {
		conditions = append(conditions, fmt.Sprintf("course = $%d", len(args)+1))
		args = append(args, filter.Course)
	}
	if filter.ISAExamNumber != "" {
		conditions = append(conditions, fmt.Sprintf("isa_exam_number = $%d", len(args)+1))
		args = append(args, filter.ISAExamNumber)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}
	base += " ORDER BY roll_number"

	var booklets []models.Booklet
	if err := r.db.SelectContext(ctx, &booklets, base, args...); err != nil {
		return nil, fmt.Errorf("list booklets: %w", err)
	}
	return booklets, nil
}
