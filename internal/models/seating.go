package models

// EmptyRange is the sentinel stored when no students were placed in a room
// for a given track.
const EmptyRange = "EMPTY"

// SeatingRoom is a room on the seating-arrangement side, ordered by a stored
// sequence number independent of the duty-allocation classrooms.
type SeatingRoom struct {
	SequenceNumber int    `db:"sequence_number" json:"sequence_number"`
	ClassroomName  string `db:"classroom_name" json:"classroom_name"`
	NoOfBenches    int    `db:"no_of_benches" json:"no_of_benches"`
}

// SeatArrangement is the computed seating snapshot for one room. It is fully
// recomputed and rewritten on every seating run; paper counts are absent for
// tracks that received no students.
type SeatArrangement struct {
	ClassroomName       string `db:"classroom_name" json:"classroom_name"`
	ThirdSemRollNumbers string `db:"third_sem_roll_numbers" json:"third_sem_roll_numbers"`
	FifthSemRollNumbers string `db:"fifth_sem_roll_numbers" json:"fifth_sem_roll_numbers"`
	ThirdSemPaperCount  *int   `db:"third_sem_paper_count" json:"third_sem_paper_count,omitempty"`
	FifthSemPaperCount  *int   `db:"fifth_sem_paper_count" json:"fifth_sem_paper_count,omitempty"`
}
