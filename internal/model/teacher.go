package model

import "time"

// Teacher represents a member of the teaching staff.
type Teacher struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	HireDate   time.Time `json:"hire_date"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
}

// FullName returns the teacher's display name as "first last".
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

// CreateTeacherRequest is the payload for creating a new teacher.
type CreateTeacherRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string `json:"last_name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"omitempty,min=7,max=20"`
	Department string `json:"department" validate:"omitempty,max=100"`
}
