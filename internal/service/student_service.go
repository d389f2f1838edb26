package service

import (
	"context"

	"github.com/stemsi/edureg-backend/internal/model"
	"github.com/stemsi/edureg-backend/internal/repository"
	"github.com/stemsi/edureg-backend/internal/validator"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// Create validates the request and inserts a new student.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	if fields := validator.Struct(req); fields != nil {
		return nil, repository.NewValidationError(fields)
	}

	student := &model.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Phone:       req.Phone,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a student by email.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return s.studentRepo.GetByEmail(ctx, email)
}

// List retrieves all students.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

// Delete removes a student and, by cascade, their registrations.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
