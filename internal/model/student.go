package model

import "time"

// Student represents an enrolled student.
type Student struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Phone          *string   `json:"phone,omitempty"`
}

// FullName returns the student's display name as "first last".
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// CreateStudentRequest is the payload for creating a new student.
// DateOfBirth must be at least 18 years before the insert time.
type CreateStudentRequest struct {
	FirstName   string    `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string    `json:"last_name" validate:"required,min=1,max=100"`
	Email       string    `json:"email" validate:"required,email,max=255"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required,adult"`
	Phone       *string   `json:"phone" validate:"omitempty,min=7,max=20"`
}
