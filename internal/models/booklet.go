package models

// Booklet is an answer booklet assigned to one roll number for one exam.
type Booklet struct {
	BookletID     string `db:"booklet_id" json:"booklet_id"`
	RollNumber    int    `db:"roll_number" json:"roll_number"`
	Division      string `db:"division" json:"division"`
	Course        string `db:"course" json:"course"`
	Semester      string `db:"semester" json:"semester"`
	ISAExamNumber string `db:"isa_exam_number" json:"isa_exam_number"`
}
