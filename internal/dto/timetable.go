package dto

// TimetableEntryInput is one course slot in a timetable save payload.
type TimetableEntryInput struct {
	Department string `json:"department" validate:"required"`
	Date       string `json:"date" validate:"required"`
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
	CourseName string `json:"courseName" validate:"required"`
	CourseCode string `json:"courseCode" validate:"required"`
}

// SaveTimetableRequest persists a batch of timetable entries for one exam.
type SaveTimetableRequest struct {
	ExamType string                `json:"examType" validate:"required"`
	Semester string                `json:"semester" validate:"required"`
	Entries  []TimetableEntryInput `json:"entries" validate:"required,min=1,dive"`
}

// DutyRosterInput is one faculty duty slot in a roster save payload.
type DutyRosterInput struct {
	Date      string `json:"date" validate:"required"`
	Session   string `json:"session" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Classroom string `json:"classroom" validate:"required"`
}

// SaveDutyRosterRequest replaces the roster for the dates it mentions.
type SaveDutyRosterRequest struct {
	ExamType    string            `json:"examType" validate:"required,oneof=ISA1 ISA2 ESA"`
	Allocations []DutyRosterInput `json:"allocations" validate:"required,min=1,dive"`
}
