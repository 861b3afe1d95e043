package models

// ExamType names an exam sitting in the academic term.
type ExamType string

const (
	ExamISA1 ExamType = "ISA1"
	ExamISA2 ExamType = "ISA2"
	ExamESA  ExamType = "ESA"
)

// Valid reports whether the exam type is one of the recognised sittings.
func (e ExamType) Valid() bool {
	switch e {
	case ExamISA1, ExamISA2, ExamESA:
		return true
	}
	return false
}

// TimetableEntry is one scheduled course slot in the exam timetable summary.
type TimetableEntry struct {
	ID         int64  `db:"id" json:"id"`
	ExamType   string `db:"exam_type" json:"exam_type"`
	Semester   string `db:"semester" json:"semester"`
	Department string `db:"department" json:"department"`
	Date       string `db:"date" json:"date"`
	Day        string `db:"day" json:"day"`
	StartTime  string `db:"start_time" json:"start_time"`
	EndTime    string `db:"end_time" json:"end_time"`
	CourseName string `db:"course_name" json:"course_name"`
	CourseCode string `db:"course_code" json:"course_code"`
}

// DutyRosterEntry assigns a faculty member to a classroom for one exam session.
type DutyRosterEntry struct {
	ID          string `db:"id" json:"id"`
	ExamType    string `db:"exam_type" json:"exam_type"`
	Date        string `db:"date" json:"date"`
	Session     string `db:"session" json:"session"`
	FacultyName string `db:"faculty_name" json:"faculty_name"`
	Classroom   string `db:"classroom" json:"classroom"`
}
