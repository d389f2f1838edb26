package service

import (
	"context"

	"github.com/stemsi/edureg-backend/internal/model"
	"github.com/stemsi/edureg-backend/internal/repository"
	"github.com/stemsi/edureg-backend/internal/validator"
)

// BatchService handles batch business logic.
type BatchService struct {
	batchRepo *repository.BatchRepository
}

// NewBatchService creates a new BatchService.
func NewBatchService(batchRepo *repository.BatchRepository) *BatchService {
	return &BatchService{batchRepo: batchRepo}
}

// Create validates the request and inserts a new batch. The referenced
// course must exist; a dangling course id fails the referential check.
func (s *BatchService) Create(ctx context.Context, req *model.CreateBatchRequest) (*model.Batch, error) {
	if fields := validator.Struct(req); fields != nil {
		return nil, repository.NewValidationError(fields)
	}

	batch := &model.Batch{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CourseID:  req.CourseID,
	}
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetByID retrieves a batch by ID.
func (s *BatchService) GetByID(ctx context.Context, id int64) (*model.Batch, error) {
	return s.batchRepo.GetByID(ctx, id)
}

// List retrieves all batches.
func (s *BatchService) List(ctx context.Context) ([]model.Batch, error) {
	return s.batchRepo.List(ctx)
}

// ListByCourse retrieves all batches of a course.
func (s *BatchService) ListByCourse(ctx context.Context, courseID int64) ([]model.Batch, error) {
	return s.batchRepo.ListByCourse(ctx, courseID)
}

// Delete removes a batch and, by cascade, its registrations.
func (s *BatchService) Delete(ctx context.Context, id int64) error {
	return s.batchRepo.Delete(ctx, id)
}
