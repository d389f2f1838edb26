package service

import (
	"context"

	"github.com/stemsi/edureg-backend/internal/model"
	"github.com/stemsi/edureg-backend/internal/repository"
	"github.com/stemsi/edureg-backend/internal/validator"
)

// AssignmentService handles course-teacher assignment business logic.
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignmentRepo *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{assignmentRepo: assignmentRepo}
}

// Assign validates the request and links a teacher to a course. A
// (course, teacher) pair can be assigned only once.
func (s *AssignmentService) Assign(ctx context.Context, req *model.AssignTeacherRequest) (*model.CourseTeacherAssignment, error) {
	if fields := validator.Struct(req); fields != nil {
		return nil, repository.NewValidationError(fields)
	}

	assignment := &model.CourseTeacherAssignment{
		CourseID:  req.CourseID,
		TeacherID: req.TeacherID,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ListByCourse retrieves all assignments of a course.
func (s *AssignmentService) ListByCourse(ctx context.Context, courseID int64) ([]model.CourseTeacherAssignment, error) {
	return s.assignmentRepo.ListByCourse(ctx, courseID)
}

// Remove deletes an assignment by ID.
func (s *AssignmentService) Remove(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}
