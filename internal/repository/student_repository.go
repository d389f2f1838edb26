package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/edureg-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	db Querier
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

// WithTx returns a copy of the repository bound to an open transaction.
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx}
}

// Create inserts a new student and fills in the generated id and
// enrollment timestamp.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO students (first_name, last_name, email, date_of_birth, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, enrollment_date`,
		s.FirstName, s.LastName, s.Email, s.DateOfBirth, s.Phone,
	).Scan(&s.ID, &s.EnrollmentDate)
	return mapWriteError(err)
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	s := &model.Student{}
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, date_of_birth, enrollment_date, phone
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.DateOfBirth, &s.EnrollmentDate, &s.Phone)
	if err != nil {
		return nil, mapReadError(err)
	}
	return s, nil
}

// GetByEmail retrieves a student by their unique email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	s := &model.Student{}
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, date_of_birth, enrollment_date, phone
		 FROM students WHERE email = $1`, email,
	).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.DateOfBirth, &s.EnrollmentDate, &s.Phone)
	if err != nil {
		return nil, mapReadError(err)
	}
	return s, nil
}

// List retrieves all students ordered by last name.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, email, date_of_birth, enrollment_date, phone
		 FROM students ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.DateOfBirth, &s.EnrollmentDate, &s.Phone); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Delete removes a student by ID. Registrations of the student are
// removed by cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
