package models

// FacultyMember is a department faculty record eligible for invigilation duty.
type FacultyMember struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Designation string `db:"designation" json:"designation"`
}
