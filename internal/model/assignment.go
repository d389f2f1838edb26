package model

import "time"

// CourseTeacherAssignment links a teacher to a course they teach.
// A (course, teacher) pair is assigned at most once; deleting either
// side removes the assignment.
type CourseTeacherAssignment struct {
	ID           int64     `json:"id"`
	CourseID     int64     `json:"course_id"`
	TeacherID    int64     `json:"teacher_id"`
	AssignedDate time.Time `json:"assigned_date"`
}

// AssignTeacherRequest is the payload for assigning a teacher to a course.
type AssignTeacherRequest struct {
	CourseID  int64 `json:"course_id" validate:"required"`
	TeacherID int64 `json:"teacher_id" validate:"required"`
}
