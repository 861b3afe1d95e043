package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// SeatingRoomRepository manages the ordered seating-side room list.
type SeatingRoomRepository struct {
	db *sqlx.DB
}

// NewSeatingRoomRepository constructs a SeatingRoomRepository.
func NewSeatingRoomRepository(db *sqlx.DB) *SeatingRoomRepository {
	return &SeatingRoomRepository{db: db}
}

// List returns rooms in their stored sequence order.
func (r *SeatingRoomRepository) List(ctx context.Context) ([]models.SeatingRoom, error) {
	const query = `SELECT sequence_number, classroom_name, no_of_benches FROM classroom_list_2 ORDER BY sequence_number`
	var rooms []models.SeatingRoom
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list seating rooms: %w", err)
	}
	return rooms, nil
}

// ExistsByName reports whether a room with the name is already registered.
func (r *SeatingRoomRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM classroom_list_2 WHERE classroom_name = $1 LIMIT 1`, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check seating room: %w", err)
	}
	return true, nil
}

// NextSequence returns the sequence number the next room should receive.
func (r *SeatingRoomRepository) NextSequence(ctx context.Context) (int, error) {
	var next int
	if err := r.db.GetContext(ctx, &next, `SELECT COALESCE(MAX(sequence_number), 0) + 1 FROM classroom_list_2`); err != nil {
		return 0, fmt.Errorf("next sequence number: %w", err)
	}
	return next, nil
}

// Add appends one room to the list.
func (r *SeatingRoomRepository) Add(ctx context.Context, room *models.SeatingRoom) error {
	const query = `INSERT INTO classroom_list_2 (sequence_number, classroom_name, no_of_benches)
		VALUES (:sequence_number, :classroom_name, :no_of_benches)`
	if _, err := r.db.NamedExecContext(ctx, query, room); err != nil {
		return fmt.Errorf("add seating room: %w", err)
	}
	return nil
}

// DeleteByName removes one room, reporting how many rows went away.
func (r *SeatingRoomRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM classroom_list_2 WHERE classroom_name = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("delete seating room: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// UpdateBenches changes a room's bench count.
func (r *SeatingRoomRepository) UpdateBenches(ctx context.Context, name string, benches int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE classroom_list_2 SET no_of_benches = $1 WHERE classroom_name = $2`, benches, name)
	if err != nil {
		return 0, fmt.Errorf("update benches: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Replace swaps the full room list for the seeded one.
func (r *SeatingRoomRepository) Replace(ctx context.Context, rooms []models.SeatingRoom) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin room replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `TRUNCATE TABLE classroom_list_2`); err != nil {
		return fmt.Errorf("truncate seating rooms: %w", err)
	}
	const query = `INSERT INTO classroom_list_2 (sequence_number, classroom_name, no_of_benches) VALUES ($1, $2, $3)`
	for _, room := range rooms {
		if _, err := tx.ExecContext(ctx, query, room.SequenceNumber, room.ClassroomName, room.NoOfBenches); err != nil {
			return fmt.Errorf("seed seating room %s: %w", room.ClassroomName, err)
		}
	}
	return tx.Commit()
}
