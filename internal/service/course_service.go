package service

import (
	"context"

	"github.com/stemsi/edureg-backend/internal/model"
	"github.com/stemsi/edureg-backend/internal/repository"
	"github.com/stemsi/edureg-backend/internal/validator"
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// Create validates the request and inserts a new course.
func (s *CourseService) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	if fields := validator.Struct(req); fields != nil {
		return nil, repository.NewValidationError(fields)
	}

	course := &model.Course{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Credits:     req.Credits,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetByID retrieves a course by ID.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetByCode retrieves a course by its unique code.
func (s *CourseService) GetByCode(ctx context.Context, code string) (*model.Course, error) {
	return s.courseRepo.GetByCode(ctx, code)
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

// Delete removes a course and, by cascade, its batches, their
// registrations, and its teacher assignments.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
