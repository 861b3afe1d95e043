package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// StudentRepository reads the two seating input lists. The fifth-semester
// list lives in student_list, the third-semester one in student_list_3rd;
// both are populated by the flat-file loader.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListThirdSem returns the third-semester pool sorted by roll number.
func (r *StudentRepository) ListThirdSem(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, `SELECT rno, usn, name FROM student_list_3rd ORDER BY rno`); err != nil {
		return nil, fmt.Errorf("list third-sem students: %w", err)
	}
	return students, nil
}

// ListFifthSem returns the fifth-semester pool sorted by roll number.
func (r *StudentRepository) ListFifthSem(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, `SELECT rno, usn, name FROM student_list ORDER BY rno`); err != nil {
		return nil, fmt.Errorf("list fifth-sem students: %w", err)
	}
	return students, nil
}

// ReplaceThirdSem swaps the third-semester list for the seeded one.
func (r *StudentRepository) ReplaceThirdSem(ctx context.Context, students []models.Student) error {
	return r.replace(ctx, "student_list_3rd", students)
}

// ReplaceFifthSem swaps the fifth-semester list for the seeded one.
func (r *StudentRepository) ReplaceFifthSem(ctx context.Context, students []models.Student) error {
	return r.replace(ctx, "student_list", students)
}

func (r *StudentRepository) replace(ctx context.Context, table string, students []models.Student) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin student replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
		return fmt.Errorf("truncate %s: %w", table, err)
	}
	query := fmt.Sprintf("INSERT INTO %s (rno, usn, name) VALUES ($1, $2, $3)", table)
	for _, s := range students {
		if _, err := tx.ExecContext(ctx, query, s.RollNo, s.USN, s.Name); err != nil {
			return fmt.Errorf("seed student %d into %s: %w", s.RollNo, table, err)
		}
	}
	return tx.Commit()
}
