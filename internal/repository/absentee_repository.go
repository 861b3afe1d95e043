package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/dto"
	"github.com/examcell/exam-admin-api/internal/models"
)

// AbsenteeRepository manages exam absentee records.
type AbsenteeRepository struct {
	db *sqlx.DB
}

// NewAbsenteeRepository constructs an AbsenteeRepository.
func NewAbsenteeRepository(db *sqlx.DB) *AbsenteeRepository {
	return &AbsenteeRepository{db: db}
}

// Insert stores one absentee row.
func (r *AbsenteeRepository) Insert(ctx context.Context, record *models.Absentee) error {
	const query = `INSERT INTO absentees (roll_number, division, course, semester, isa_exam_number, status)
		VALUES (:roll_number, :division, :course, :semester, :isa_exam_number, :status)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("insert absentee: %w", err)
	}
	return nil
}

// List returns absent records matching the filter.
func (r *AbsenteeRepository) List(ctx context.Context, filter dto.AbsenteeFilter) ([]models.Absentee, error) {
	base := "SELECT id, roll_number, division, course, semester, isa_exam_number, status FROM absentees WHERE status = $1"
	args := []interface{}{models.StatusAbsent}
	var conditions []string

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

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	var records []models.Absentee
	if err := r.db.SelectContext(ctx, &records, base, args...); err != nil {
		return nil, fmt.Errorf("list absentees: %w", err)
	}
	return records, nil
}

// CoursesWithAbsentees returns the distinct courses that have at least one
// absent record for the semester.
func (r *AbsenteeRepository) CoursesWithAbsentees(ctx context.Context, semester string) ([]string, error) {
	const query = `SELECT DISTINCT course FROM absentees WHERE status = $1 AND semester = $2 ORDER BY course`
	var courses []string
	if err := r.db.SelectContext(ctx, &courses, query, models.StatusAbsent, semester); err != nil {
		return nil, fmt.Errorf("list courses with absentees: %w", err)
	}
	return courses, nil
}
