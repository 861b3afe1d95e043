package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// ClassroomRepository manages persistence for duty-side classrooms.
type ClassroomRepository struct {
	db *sqlx.DB
}

// NewClassroomRepository constructs a ClassroomRepository.
func NewClassroomRepository(db *sqlx.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// List returns every classroom ordered by name.
func (r *ClassroomRepository) List(ctx context.Context) ([]models.Classroom, error) {
	const query = `SELECT id, name, num_benches, students_per_bench, total_capacity FROM classrooms ORDER BY name`
	var rooms []models.Classroom
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return rooms, nil
}

// ListAvailable returns classrooms still under teacher capacity, annotated
// with the occupancy snapshot the allocator works from. Emptier rooms come
// first so allocations spread across rooms before any one room fills up.
func (r *ClassroomRepository) ListAvailable(ctx context.Context) ([]models.ClassroomOccupancy, error) {
	const query = `
		SELECT
			c.id, c.name, c.num_benches, c.students_per_bench, c.total_capacity,
			COUNT(a.id) AS current_teachers,
			COALESCE(SUM(CASE WHEN t.teaches_sem_3 THEN 1 ELSE 0 END), 0) AS sem3_count,
			COALESCE(SUM(CASE WHEN t.teaches_sem_5 THEN 1 ELSE 0 END), 0) AS sem5_count
		FROM classrooms c
		LEFT JOIN allocations a ON c.id = a.classroom_id
		LEFT JOIN teachers t ON a.teacher_id = t.id
		GROUP BY c.id
		HAVING COUNT(a.id) < c.students_per_bench
		ORDER BY COUNT(a.id) ASC, c.name`
	var rooms []models.ClassroomOccupancy
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list available classrooms: %w", err)
	}
	return rooms, nil
}

// GetOccupancy fetches one classroom with its occupancy snapshot.
func (r *ClassroomRepository) GetOccupancy(ctx context.Context, id int64) (*models.ClassroomOccupancy, error) {
	const query = `
		SELECT
			c.id, c.name, c.num_benches, c.students_per_bench, c.total_capacity,
			COUNT(a.id) AS current_teachers,
			COALESCE(SUM(CASE WHEN t.teaches_sem_3 THEN 1 ELSE 0 END), 0) AS sem3_count,
			COALESCE(SUM(CASE WHEN t.teaches_sem_5 THEN 1 ELSE 0 END), 0) AS sem5_count
		FROM classrooms c
		LEFT JOIN allocations a ON c.id = a.classroom_id
		LEFT JOIN teachers t ON a.teacher_id = t.id
		WHERE c.id = $1
		GROUP BY c.id`
	var room models.ClassroomOccupancy
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		return nil, err
	}
	return &room, nil
}

// InsertMissing seeds classrooms, skipping names that already exist.
func (r *ClassroomRepository) InsertMissing(ctx context.Context, rooms []models.Classroom) (int64, error) {
	const query = `
		INSERT INTO classrooms (name, num_benches, students_per_bench, total_capacity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING`
	var inserted int64
	for _, room := range rooms {
		res, err := r.db.ExecContext(ctx, query, room.Name, room.NumBenches, room.StudentsPerBench, room.NumBenches*room.StudentsPerBench)
		if err != nil {
			return inserted, fmt.Errorf("seed classroom %s: %w", room.Name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}
	return inserted, nil
}
