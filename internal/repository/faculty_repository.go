package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/examcell/exam-admin-api/internal/models"
)

// invigilatorDesignations are the faculty ranks that take invigilation duty.
var invigilatorDesignations = []string{"Assistant Professor", "Assistant Professor (P)", "T.A"}

// FacultyRepository reads the department faculty list.
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository constructs a FacultyRepository.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// ListInvigilators returns faculty in invigilating ranks, ordered by name.
func (r *FacultyRepository) ListInvigilators(ctx context.Context) ([]models.FacultyMember, error) {
	const query = `SELECT id, name, designation FROM faculty WHERE designation IN ($1, $2, $3) ORDER BY name`
	var members []models.FacultyMember
	if err := r.db.SelectContext(ctx, &members, query, invigilatorDesignations[0], invigilatorDesignations[1], invigilatorDesignations[2]); err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}
	return members, nil
}
