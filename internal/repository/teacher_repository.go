package repository

import (
	"context"

	"github.com/stemsi/edureg-backend/internal/model"
)

// TeacherRepository handles teacher data access.
type TeacherRepository struct {
	db Querier
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(db Querier) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher and fills in the generated id and hire
// timestamp.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO teachers (first_name, last_name, email, phone, department)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, hire_date`,
		t.FirstName, t.LastName, t.Email, t.Phone, t.Department,
	).Scan(&t.ID, &t.HireDate)
	return mapWriteError(err)
}

// GetByID retrieves a teacher by ID.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, hire_date, phone, department
		 FROM teachers WHERE id = $1`, id,
	).Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.HireDate, &t.Phone, &t.Department)
	if err != nil {
		return nil, mapReadError(err)
	}
	return t, nil
}

// List retrieves all teachers ordered by last name.
func (r *TeacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, email, hire_date, phone, department
		 FROM teachers ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.HireDate, &t.Phone, &t.Department); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// Delete removes a teacher by ID. Course assignments of the teacher are
// removed by cascade.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
