package models

// Teacher is an invigilating teacher. The two semester flags come from two
// seed files and are exclusive per teacher in practice, though the schema does
// not force that.
type Teacher struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Division    string `db:"division" json:"division"`
	TeachesSem3 bool   `db:"teaches_sem_3" json:"teaches_sem_3"`
	TeachesSem5 bool   `db:"teaches_sem_5" json:"teaches_sem_5"`
}

// Track returns the semester track the teacher invigilates for. Teachers with
// both flags set are treated as third-semester, matching the seed precedence.
func (t Teacher) Track() Semester {
	if t.TeachesSem3 {
		return SemesterThird
	}
	return SemesterFifth
}

// TeacherDetail is a row from the raw teacher seed files, exposed unmodified
// for the administrative front-end.
type TeacherDetail struct {
	Name     string `json:"name"`
	Course   string `json:"course"`
	Division string `json:"division"`
	Semester int    `json:"semester"`
}
