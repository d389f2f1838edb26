package repository

import (
	"context"

	"github.com/stemsi/edureg-backend/internal/model"
)

// AssignmentRepository handles course-teacher assignment data access.
type AssignmentRepository struct {
	db Querier
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(db Querier) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment and fills in the generated id and
// assignment timestamp.
func (r *AssignmentRepository) Create(ctx context.Context, a *model.CourseTeacherAssignment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_teacher_assignments (course_id, teacher_id)
		 VALUES ($1, $2)
		 RETURNING id, assigned_date`,
		a.CourseID, a.TeacherID,
	).Scan(&a.ID, &a.AssignedDate)
	return mapWriteError(err)
}

// ListByCourse retrieves all assignments of a course, oldest first.
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]model.CourseTeacherAssignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, course_id, teacher_id, assigned_date
		 FROM course_teacher_assignments WHERE course_id = $1 ORDER BY assigned_date`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.CourseTeacherAssignment
	for rows.Next() {
		var a model.CourseTeacherAssignment
		if err := rows.Scan(&a.ID, &a.CourseID, &a.TeacherID, &a.AssignedDate); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Delete removes an assignment by ID.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM course_teacher_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
