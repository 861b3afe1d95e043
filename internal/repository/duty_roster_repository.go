package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// DutyRosterRepository persists faculty duty rosters keyed by exam and date.
type DutyRosterRepository struct {
	db *sqlx.DB
}

// NewDutyRosterRepository constructs a DutyRosterRepository.
func NewDutyRosterRepository(db *sqlx.DB) *DutyRosterRepository {
	return &DutyRosterRepository{db: db}
}

// DeleteByExamAndDates removes existing roster rows for the exam on the given
// dates, inside the caller's transaction.
func (r *DutyRosterRepository) DeleteByExamAndDates(ctx context.Context, exec sqlx.ExtContext, examType string, dates []string) error {
	if len(dates) == 0 {
		return nil
	}
	placeholders := make([]string, len(dates))
	args := make([]interface{}, 0, len(dates)+1)
	args = append(args, examType)
	for i, date := range dates {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, date)
	}
	query := "DELETE FROM duty_allocation WHERE exam_type = $1 AND date IN (" + strings.Join(placeholders, ", ") + ")"
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete duty roster rows: %w", err)
	}
	return nil
}

// InsertEntries writes roster rows inside the caller's transaction.
func (r *DutyRosterRepository) InsertEntries(ctx context.Context, exec sqlx.ExtContext, entries []models.DutyRosterEntry) error {
	const query = `INSERT INTO duty_allocation (id, exam_type, date, session, faculty_name, classroom)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, err := exec.ExecContext(ctx, query, e.ID, e.ExamType, e.Date, e.Session, e.FacultyName, e.Classroom); err != nil {
			return fmt.Errorf("insert duty roster entry: %w", err)
		}
	}
	return nil
}

// DeleteAll clears the duty roster inside the caller's transaction.
func (r *DutyRosterRepository) DeleteAll(ctx context.Context, exec sqlx.ExtContext) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM duty_allocation`); err != nil {
		return fmt.Errorf("clear duty roster: %w", err)
	}
	return nil
}

// List returns the full roster ordered by date and session.
func (r *DutyRosterRepository) List(ctx context.Context) ([]models.DutyRosterEntry, error) {
	const query = `SELECT id, exam_type, date, session, faculty_name, classroom
		FROM duty_allocation ORDER BY date, session, classroom`
	var entries []models.DutyRosterEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list duty roster: %w", err)
	}
	return entries, nil
}
