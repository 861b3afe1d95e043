package dto

// AttendanceRecord is one student's status for an exam sitting. Only records
// marked Absent are persisted.
type AttendanceRecord struct {
	RollNumber    int    `json:"RollNumber" validate:"required"`
	Division      string `json:"Division" validate:"required"`
	Course        string `json:"Course" validate:"required"`
	Semester      string `json:"Semester" validate:"required"`
	ISAExamNumber string `json:"ISAExamNumber" validate:"required"`
	Status        string `json:"Status" validate:"required"`
}

// MarkAttendanceRequest carries a batch of attendance records.
type MarkAttendanceRequest struct {
	AttendanceData []AttendanceRecord `json:"attendanceData" validate:"required,min=1,dive"`
}

// AbsenteeFilter narrows the absentee listing.
type AbsenteeFilter struct {
	Semester string
	Division string
	Course   string
}
