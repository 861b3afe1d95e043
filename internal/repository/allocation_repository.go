package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// AllocationRepository manages persistence for teacher duty allocations.
type AllocationRepository struct {
	db *sqlx.DB
}

// NewAllocationRepository constructs an AllocationRepository.
func NewAllocationRepository(db *sqlx.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// BulkCreate inserts a batch of allocations in one statement. The caller
// passes the transaction so the whole batch commits or rolls back together.
func (r *AllocationRepository) BulkCreate(ctx context.Context, exec sqlx.ExtContext, allocations []models.Allocation) error {
	if len(allocations) == 0 {
		return nil
	}
	placeholders := make([]string, 0, len(allocations))
	args := make([]interface{}, 0, len(allocations)*5)
	now := time.Now().UTC()
	for i, alloc := range allocations {
		if alloc.ID == "" {
			alloc.ID = uuid.NewString()
		}
		if alloc.AllocationDate.IsZero() {
			alloc.AllocationDate = now
		}
		base := i * 5
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, alloc.ID, alloc.TeacherID, alloc.ClassroomID, string(alloc.Semester), alloc.AllocationDate)
	}
	query := "INSERT INTO allocations (id, teacher_id, classroom_id, semester, allocation_date) VALUES " + strings.Join(placeholders, ", ")
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("bulk create allocations: %w", err)
	}
	return nil
}

// Create inserts a single allocation row.
func (r *AllocationRepository) Create(ctx context.Context, alloc *models.Allocation) error {
	if alloc.ID == "" {
		alloc.ID = uuid.NewString()
	}
	if alloc.AllocationDate.IsZero() {
		alloc.AllocationDate = time.Now().UTC()
	}
	const query = `INSERT INTO allocations (id, teacher_id, classroom_id, semester, allocation_date)
		VALUES (:id, :teacher_id, :classroom_id, :semester, :allocation_date)`
	if _, err := r.db.NamedExecContext(ctx, query, alloc); err != nil {
		return fmt.Errorf("create allocation: %w", err)
	}
	return nil
}

// DeleteByClassroom removes every allocation for a classroom.
func (r *AllocationRepository) DeleteByClassroom(ctx context.Context, classroomID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM allocations WHERE classroom_id = $1`, classroomID)
	if err != nil {
		return 0, fmt.Errorf("delete classroom allocations: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// DeleteAll clears the allocations table.
func (r *AllocationRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM allocations`); err != nil {
		return fmt.Errorf("clear allocations: %w", err)
	}
	return nil
}

// ListRoomSummaries aggregates current allocations per classroom.
func (r *AllocationRepository) ListRoomSummaries(ctx context.Context) ([]models.RoomAllocationSummary, error) {
	const query = `
		SELECT
			c.id AS classroom_id,
			c.name AS classroom_name,
			c.students_per_bench,
			COUNT(a.id) AS current_teachers,
			COALESCE(array_agg(t.name) FILTER (WHERE t.name IS NOT NULL), '{}') AS teacher_names
		FROM classrooms c
		LEFT JOIN allocations a ON c.id = a.classroom_id
		LEFT JOIN teachers t ON a.teacher_id = t.id
		GROUP BY c.id, c.name, c.students_per_bench
		ORDER BY c.name`
	var summaries []models.RoomAllocationSummary
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("list room summaries: %w", err)
	}
	return summaries, nil
}

// TrackCounts returns per-track teacher counts for one classroom.
func (r *AllocationRepository) TrackCounts(ctx context.Context, classroomID int64) (*models.RoomTrackCounts, error) {
	const query = `
		SELECT
			c.name AS classroom_name,
			c.num_benches,
			COALESCE(SUM(CASE WHEN t.teaches_sem_3 THEN 1 ELSE 0 END), 0) AS sem3_teachers,
			COALESCE(SUM(CASE WHEN t.teaches_sem_5 THEN 1 ELSE 0 END), 0) AS sem5_teachers
		FROM classrooms c
		LEFT JOIN allocations a ON c.id = a.classroom_id
		LEFT JOIN teachers t ON a.teacher_id = t.id
		WHERE c.id = $1
		GROUP BY c.id, c.name, c.num_benches`
	var counts models.RoomTrackCounts
	if err := r.db.GetContext(ctx, &counts, query, classroomID); err != nil {
		return nil, err
	}
	return &counts, nil
}
