package dto

// AssignBookletsRequest generates booklet IDs for a contiguous roll range.
type AssignBookletsRequest struct {
	Semester      string `json:"semester" validate:"required"`
	Division      string `json:"division" validate:"required,len=1"`
	Course        string `json:"course" validate:"required"`
	ISAExamNumber string `json:"isaExamNumber" validate:"required"`
	StartRoll     int    `json:"startRoll" validate:"required,min=1"`
	EndRoll       int    `json:"endRoll" validate:"required,gtefield=StartRoll"`
}

// AssignBookletsResponse reports how many booklets were written.
type AssignBookletsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// BookletFilter narrows the booklet listing.
type BookletFilter struct {
	Semester      string
	Division      string
	Course        string
	ISAExamNumber string
}
