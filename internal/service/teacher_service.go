package service

import (
	"context"

	"github.com/stemsi/edureg-backend/internal/model"
	"github.com/stemsi/edureg-backend/internal/repository"
	"github.com/stemsi/edureg-backend/internal/validator"
)

// TeacherService handles teacher business logic.
type TeacherService struct {
	teacherRepo *repository.TeacherRepository
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teacherRepo *repository.TeacherRepository) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo}
}

// Create validates the request and inserts a new teacher.
func (s *TeacherService) Create(ctx context.Context, req *model.CreateTeacherRequest) (*model.Teacher, error) {
	if fields := validator.Struct(req); fields != nil {
		return nil, repository.NewValidationError(fields)
	}

	teacher := &model.Teacher{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// GetByID retrieves a teacher by ID.
func (s *TeacherService) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// List retrieves all teachers.
func (s *TeacherService) List(ctx context.Context) ([]model.Teacher, error) {
	return s.teacherRepo.List(ctx)
}

// Delete removes a teacher and, by cascade, their course assignments.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	return s.teacherRepo.Delete(ctx, id)
}
