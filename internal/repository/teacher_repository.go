package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// TeacherRepository manages persistence for invigilating teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

func semesterFlagColumn(sem models.Semester) (string, error) {
	switch sem {
	case models.SemesterThird:
		return "teaches_sem_3", nil
	case models.SemesterFifth:
		return "teaches_sem_5", nil
	}
	return "", fmt.Errorf("unknown semester %q", sem)
}

// ListBySemester returns teachers flagged for the given track.
func (r *TeacherRepository) ListBySemester(ctx context.Context, sem models.Semester) ([]models.Teacher, error) {
	column, err := semesterFlagColumn(sem)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT id, name, division, teaches_sem_3, teaches_sem_5 FROM teachers WHERE %s ORDER BY name", column)
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers by semester: %w", err)
	}
	return teachers, nil
}

// ListAll returns every teacher ordered by name.
func (r *TeacherRepository) ListAll(ctx context.Context) ([]models.Teacher, error) {
	const query = `SELECT id, name, division, teaches_sem_3, teaches_sem_5 FROM teachers ORDER BY name`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// ListUnallocated returns teachers with no allocation row at all.
func (r *TeacherRepository) ListUnallocated(ctx context.Context) ([]models.Teacher, error) {
	const query = `
		SELECT t.id, t.name, t.division, t.teaches_sem_3, t.teaches_sem_5
		FROM teachers t
		LEFT JOIN allocations a ON t.id = a.teacher_id
		WHERE a.id IS NULL
		ORDER BY t.name`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list unallocated teachers: %w", err)
	}
	return teachers, nil
}

// ListEligible returns unassigned teachers matching the track and division.
// A teacher with any allocation row, for any semester, is excluded: teachers
// are single-use until the allocations table is cleared.
func (r *TeacherRepository) ListEligible(ctx context.Context, sem models.Semester, division string) ([]models.Teacher, error) {
	column, err := semesterFlagColumn(sem)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT t.id, t.name, t.division, t.teaches_sem_3, t.teaches_sem_5
		FROM teachers t
		LEFT JOIN allocations a ON t.id = a.teacher_id
		WHERE t.%s AND t.division = $1 AND a.id IS NULL
		ORDER BY t.name`, column)
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query, division); err != nil {
		return nil, fmt.Errorf("list eligible teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	const query = `SELECT id, name, division, teaches_sem_3, teaches_sem_5 FROM teachers WHERE id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// InsertMissing seeds teachers, skipping names that already exist.
func (r *TeacherRepository) InsertMissing(ctx context.Context, teachers []models.Teacher) (int64, error) {
	const query = `
		INSERT INTO teachers (name, division, teaches_sem_3, teaches_sem_5)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING`
	var inserted int64
	for _, t := range teachers {
		res, err := r.db.ExecContext(ctx, query, t.Name, t.Division, t.TeachesSem3, t.TeachesSem5)
		if err != nil {
			return inserted, fmt.Errorf("seed teacher %s: %w", t.Name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}
	return inserted, nil
}
