package dto

// AllocateDivisionRequest asks the duty allocator to fill available rooms for
// one semester track and division.
type AllocateDivisionRequest struct {
	Semester string `json:"semester" validate:"required,oneof=3 5"`
	Division string `json:"division" validate:"required,len=1"`
}

// ManualAllocateRequest places one specific teacher into one classroom.
type ManualAllocateRequest struct {
	TeacherID   int64 `json:"teacherId" validate:"required"`
	ClassroomID int64 `json:"classroomId" validate:"required"`
}

// AllocationResult is the success body shared by the allocation endpoints.
type AllocationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
