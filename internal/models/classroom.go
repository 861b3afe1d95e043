package models

// Classroom is an invigilation room on the duty-allocation side.
// TotalCapacity is always NumBenches * StudentsPerBench; StudentsPerBench
// doubles as the maximum number of invigilators the room can hold.
type Classroom struct {
	ID               int64  `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	NumBenches       int    `db:"num_benches" json:"num_benches"`
	StudentsPerBench int    `db:"students_per_bench" json:"students_per_bench"`
	TotalCapacity    int    `db:"total_capacity" json:"total_capacity"`
}

// ClassroomOccupancy is a classroom annotated with its current allocation
// counts. The counts are a snapshot taken in a single query; all decisions in
// one allocator pass are made against the same snapshot.
type ClassroomOccupancy struct {
	Classroom
	CurrentTeachers int `db:"current_teachers" json:"current_teachers"`
	Sem3Count       int `db:"sem3_count" json:"sem3_count"`
	Sem5Count       int `db:"sem5_count" json:"sem5_count"`
}

// TrackCount returns the number of allocated teachers on the given track.
func (o ClassroomOccupancy) TrackCount(sem Semester) int {
	if sem == SemesterThird {
		return o.Sem3Count
	}
	return o.Sem5Count
}
