package model

import "time"

// RegistrationStatus represents the lifecycle of a registration.
type RegistrationStatus string

// Possible registration statuses.
const (
	StatusPending   RegistrationStatus = "Pending"
	StatusConfirmed RegistrationStatus = "Confirmed"
	StatusCancelled RegistrationStatus = "Cancelled"
)

// ConfirmationThreshold is the payment amount above which a registration
// is confirmed automatically, regardless of the caller-supplied status.
const ConfirmationThreshold = 500.0

// DeriveStatus computes the status to persist for a registration write.
// A payment above ConfirmationThreshold forces Confirmed; otherwise the
// requested status is kept, defaulting to Pending when empty. It must be
// applied on every insert and update path that touches a registration's
// status, and it never looks at status history.
func DeriveStatus(payment float64, requested RegistrationStatus) RegistrationStatus {
	if payment > ConfirmationThreshold {
		return StatusConfirmed
	}
	if requested == "" {
		return StatusPending
	}
	return requested
}

// Registration captures a student's enrollment in a specific batch,
// carrying the payment amount and status. A student registers at most
// once per batch. Deleting the student or the batch removes it.
type Registration struct {
	ID               int64              `json:"id"`
	StudentID        int64              `json:"student_id"`
	BatchID          int64              `json:"batch_id"`
	PaymentAmount    float64            `json:"payment_amount"`
	RegistrationDate time.Time          `json:"registration_date"`
	Status           RegistrationStatus `json:"status"`
}

// CreateRegistrationRequest is the payload for registering an existing
// student into a batch. Status may be left empty to take the default.
type CreateRegistrationRequest struct {
	StudentID     int64              `json:"student_id" validate:"required"`
	BatchID       int64              `json:"batch_id" validate:"required"`
	PaymentAmount float64            `json:"payment_amount" validate:"required,gt=0"`
	Status        RegistrationStatus `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
}

// RegisterStudentRequest is the payload for the composite operation
// that creates a student and their first registration in one unit.
type RegisterStudentRequest struct {
	FirstName     string    `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string    `json:"last_name" validate:"required,min=1,max=100"`
	Email         string    `json:"email" validate:"required,email,max=255"`
	DateOfBirth   time.Time `json:"date_of_birth" validate:"required,adult"`
	BatchID       int64     `json:"batch_id" validate:"required"`
	PaymentAmount float64   `json:"payment_amount" validate:"required,gt=0"`
}
