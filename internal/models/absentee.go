package models

// StatusAbsent is the only attendance status that gets persisted.
const StatusAbsent = "Absent"

// Absentee records a student missing from one ISA exam sitting.
type Absentee struct {
	ID            int64  `db:"id" json:"id"`
	RollNumber    int    `db:"roll_number" json:"roll_number"`
	Division      string `db:"division" json:"division"`
	Course        string `db:"course" json:"course"`
	Semester      string `db:"semester" json:"semester"`
	ISAExamNumber string `db:"isa_exam_number" json:"isa_exam_number"`
	Status        string `db:"status" json:"status"`
}
