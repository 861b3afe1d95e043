package models

// Student is one roll-number entry in a seating input list.
type Student struct {
	RollNo int    `db:"rno" json:"rno"`
	USN    string `db:"usn" json:"usn"`
	Name   string `db:"name" json:"name"`
}

// Band returns the student's division band: the hundreds prefix of the roll
// number (101 and 145 share band 1, 201 is band 2).
func (s Student) Band() int {
	return s.RollNo / 100
}
