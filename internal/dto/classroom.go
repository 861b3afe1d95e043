package dto

// AddSeatingRoomRequest appends a room to the seating sequence.
type AddSeatingRoomRequest struct {
	ClassroomName string `json:"classroom_name" validate:"required"`
	NoOfBenches   int    `json:"no_of_benches" validate:"required,min=1"`
}

// UpdateBenchesRequest changes a seating room's bench count.
type UpdateBenchesRequest struct {
	ClassroomName  string `json:"classroom_name" validate:"required"`
	NewNoOfBenches int    `json:"new_no_of_benches" validate:"required,min=1"`
}

// StatusResult is the generic success body for mutating endpoints.
type StatusResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
