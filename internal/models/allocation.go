package models

import (
	"time"

	"github.com/lib/pq"
)

// Allocation is one teacher-to-classroom invigilation duty.
type Allocation struct {
	ID             string    `db:"id" json:"id"`
	TeacherID      int64     `db:"teacher_id" json:"teacher_id"`
	ClassroomID    int64     `db:"classroom_id" json:"classroom_id"`
	Semester       Semester  `db:"semester" json:"semester"`
	AllocationDate time.Time `db:"allocation_date" json:"allocation_date"`
}

// RoomAllocationSummary aggregates a classroom's current duty allocations.
type RoomAllocationSummary struct {
	ClassroomID      int64          `db:"classroom_id" json:"classroom_id"`
	ClassroomName    string         `db:"classroom_name" json:"classroom_name"`
	StudentsPerBench int            `db:"students_per_bench" json:"students_per_bench"`
	CurrentTeachers  int            `db:"current_teachers" json:"current_teachers"`
	TeacherNames     pq.StringArray `db:"teacher_names" json:"teacher_names"`
}

// AllocationOverview splits room summaries into rooms with and without duties.
type AllocationOverview struct {
	Allocated   []RoomAllocationSummary `json:"allocated"`
	Unallocated []RoomAllocationSummary `json:"unallocated"`
}

// RoomTrackCounts carries per-track teacher counts for one classroom.
type RoomTrackCounts struct {
	ClassroomName string `db:"classroom_name" json:"classroom_name"`
	NumBenches    int    `db:"num_benches" json:"num_benches"`
	Sem3Teachers  int    `db:"sem3_teachers" json:"sem3_teachers"`
	Sem5Teachers  int    `db:"sem5_teachers" json:"sem5_teachers"`
}

// QuestionPaperCounts reports how many papers each track needs in a room.
// A track's count is only present when a teacher of that track is allocated.
type QuestionPaperCounts struct {
	ClassroomName string      `json:"classroom_name"`
	Papers        PaperCounts `json:"papers"`
}

// PaperCounts holds the per-track paper totals.
type PaperCounts struct {
	Sem3 *int `json:"sem3,omitempty"`
	Sem5 *int `json:"sem5,omitempty"`
}
