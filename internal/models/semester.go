package models

// Semester identifies one of the two exam tracks running in parallel.
type Semester string

const (
	SemesterThird Semester = "3"
	SemesterFifth Semester = "5"
)

// Valid reports whether the value is one of the supported tracks.
func (s Semester) Valid() bool {
	return s == SemesterThird || s == SemesterFifth
}
