package model

import "time"

// Batch represents a scheduled offering of a Course with its own start
// and end dates. Deleting the owning Course removes its batches.
type Batch struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CourseID  int64     `json:"course_id"`
}

// CreateBatchRequest is the payload for creating a new batch.
// EndDate must be strictly after StartDate.
type CreateBatchRequest struct {
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	CourseID  int64     `json:"course_id" validate:"required"`
}
