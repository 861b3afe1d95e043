package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// TimetableRepository persists exam timetable entries.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository constructs a TimetableRepository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// InsertEntries writes timetable rows inside the caller's transaction.
func (r *TimetableRepository) InsertEntries(ctx context.Context, exec sqlx.ExtContext, entries []models.TimetableEntry) error {
	const query = `INSERT INTO timetable_summary
		(exam_type, semester, department, date, day, start_time, end_time, course_name, course_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, e := range entries {
		_, err := exec.ExecContext(ctx, query, e.ExamType, e.Semester, e.Department, e.Date, e.Day, e.StartTime, e.EndTime, e.CourseName, e.CourseCode)
		if err != nil {
			return fmt.Errorf("insert timetable entry %s: %w", e.CourseCode, err)
		}
	}
	return nil
}

// ListBySemester returns timetable entries for one semester.
func (r *TimetableRepository) ListBySemester(ctx context.Context, semester string) ([]models.TimetableEntry, error) {
	const query = `SELECT id, exam_type, semester, department, date, day, start_time, end_time, course_name, course_code
		FROM timetable_summary WHERE semester = $1 ORDER BY date, start_time`
	var entries []models.TimetableEntry
	if err := r.db.SelectContext(ctx, &entries, query, semester); err != nil {
		return nil, fmt.Errorf("list timetable entries: %w", err)
	}
	return entries, nil
}
