package repository

import (
	"context"

	"github.com/stemsi/edureg-backend/internal/model"
)

// CourseRepository handles course data access.
type CourseRepository struct {
	db Querier
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course and fills in the generated id.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO courses (name, code, description, credits)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.Name, c.Code, c.Description, c.Credits,
	).Scan(&c.ID)
	return mapWriteError(err)
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	c := &model.Course{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, code, description, credits FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.Credits)
	if err != nil {
		return nil, mapReadError(err)
	}
	return c, nil
}

// GetByCode retrieves a course by its unique code.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*model.Course, error) {
	c := &model.Course{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, code, description, credits FROM courses WHERE code = $1`, code,
	).Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.Credits)
	if err != nil {
		return nil, mapReadError(err)
	}
	return c, nil
}

// List retrieves all courses ordered by code.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, code, description, credits FROM courses ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Delete removes a course by ID. Its batches, their registrations, and
// its teacher assignments are removed by cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
