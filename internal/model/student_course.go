package model

import "time"

// StudentCourse is one row of the computed student-course projection:
// students joined to courses through their registrations and batches.
// Registrations whose batch or course has been removed do not appear.
type StudentCourse struct {
	StudentID        int64              `json:"student_id"`
	StudentName      string             `json:"student_name"`
	CourseName       string             `json:"course_name"`
	BatchName        string             `json:"batch_name"`
	RegistrationDate time.Time          `json:"registration_date"`
	Status           RegistrationStatus `json:"status"`
}
