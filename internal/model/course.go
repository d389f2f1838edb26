package model

// Course represents a course in the catalog.
type Course struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
}

// CreateCourseRequest is the payload for creating a new course.
type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Code        string `json:"code" validate:"required,min=2,max=20"`
	Description string `json:"description" validate:"max=1000"`
	Credits     int    `json:"credits" validate:"required,min=1,max=10"`
}
