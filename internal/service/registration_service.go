package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stemsi/edureg-backend/internal/model"
	"github.com/stemsi/edureg-backend/internal/repository"
	"github.com/stemsi/edureg-backend/internal/validator"
)

// RegisterOutcome reports the result of the composite register-student
// operation. Constraint failures do not surface as Go errors: the
// transaction is rolled back, a warning is logged, and Failed/Notice
// describe the cause. Callers relying on the never-throws contract can
// ignore both and treat the call as fire-and-forget.
type RegisterOutcome struct {
	Student      *model.Student
	Registration *model.Registration
	Failed       bool
	Notice       string
}

// RegistrationService handles registration business logic, including
// the composite register-student operation and the student-course
// projection.
type RegistrationService struct {
	pool              *pgxpool.Pool
	studentRepo       *repository.StudentRepository
	registrationRepo  *repository.RegistrationRepository
	studentCourseRepo *repository.StudentCourseRepository
	log               zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	pool *pgxpool.Pool,
	studentRepo *repository.StudentRepository,
	registrationRepo *repository.RegistrationRepository,
	studentCourseRepo *repository.StudentCourseRepository,
	log zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		pool:              pool,
		studentRepo:       studentRepo,
		registrationRepo:  registrationRepo,
		studentCourseRepo: studentCourseRepo,
		log:               log,
	}
}

// Register validates the request and registers an existing student into
// a batch. The persisted status is derived from the payment amount.
func (s *RegistrationService) Register(ctx context.Context, req *model.CreateRegistrationRequest) (*model.Registration, error) {
	if fields := validator.Struct(req); fields != nil {
		return nil, repository.NewValidationError(fields)
	}

	reg := &model.Registration{
		StudentID:     req.StudentID,
		BatchID:       req.BatchID,
		PaymentAmount: req.PaymentAmount,
		Status:        req.Status,
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// RegisterStudent atomically creates a student and their registration
// for the given batch. On any constraint failure both inserts are
// rolled back and the cause is reported through the outcome instead of
// an error; only infrastructure faults (begin/commit) return a non-nil
// error.
func (s *RegistrationService) RegisterStudent(ctx context.Context, req *model.RegisterStudentRequest) (*RegisterOutcome, error) {
	if fields := validator.Struct(req); fields != nil {
		return s.failure(repository.NewValidationError(fields)), nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	student := &model.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
	}
	if err := s.studentRepo.WithTx(tx).Create(ctx, student); err != nil {
		return s.failure(err), nil
	}

	reg := &model.Registration{
		StudentID:     student.ID,
		BatchID:       req.BatchID,
		PaymentAmount: req.PaymentAmount,
	}
	if err := s.registrationRepo.WithTx(tx).Create(ctx, reg); err != nil {
		return s.failure(err), nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.log.Info().
		Int64("student_id", student.ID).
		Int64("registration_id", reg.ID).
		Str("status", string(reg.Status)).
		Msg("student registered")

	return &RegisterOutcome{Student: student, Registration: reg}, nil
}

// failure logs the rolled-back cause and wraps it in an outcome.
func (s *RegistrationService) failure(cause error) *RegisterOutcome {
	s.log.Warn().Err(cause).Msg("register-student rolled back")
	return &RegisterOutcome{Failed: true, Notice: cause.Error()}
}

// UpdateStatus sets a registration's status; the persisted value is
// re-derived from the payment amount.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id int64, status model.RegistrationStatus) (model.RegistrationStatus, error) {
	return s.registrationRepo.UpdateStatus(ctx, id, status)
}

// GetByID retrieves a registration by ID.
func (s *RegistrationService) GetByID(ctx context.Context, id int64) (*model.Registration, error) {
	return s.registrationRepo.GetByID(ctx, id)
}

// ListByStudent retrieves all registrations of a student.
func (s *RegistrationService) ListByStudent(ctx context.Context, studentID int64) ([]model.Registration, error) {
	return s.registrationRepo.ListByStudent(ctx, studentID)
}

// Delete removes a registration by ID.
func (s *RegistrationService) Delete(ctx context.Context, id int64) error {
	return s.registrationRepo.Delete(ctx, id)
}

// StudentCourses returns the computed student-course projection.
func (s *RegistrationService) StudentCourses(ctx context.Context) ([]model.StudentCourse, error) {
	return s.studentCourseRepo.List(ctx)
}

// StudentCoursesByStudent returns the projection rows of one student.
func (s *RegistrationService) StudentCoursesByStudent(ctx context.Context, studentID int64) ([]model.StudentCourse, error) {
	return s.studentCourseRepo.ListByStudent(ctx, studentID)
}
