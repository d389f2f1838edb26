package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/edureg-backend/internal/model"
)

// studentCourseQuery is the computed student-course projection: an
// inner join, so registrations whose batch or course was removed never
// appear.
const studentCourseQuery = `
	SELECT s.id,
	       s.first_name || ' ' || s.last_name,
	       c.name,
	       b.name,
	       r.registration_date,
	       r.status
	FROM students s
	JOIN registrations r ON r.student_id = s.id
	JOIN batches b ON b.id = r.batch_id
	JOIN courses c ON c.id = b.course_id`

// StudentCourseRepository reads the student-course projection. It is
// computed on every read; nothing is materialized or cached.
type StudentCourseRepository struct {
	db Querier
}

// NewStudentCourseRepository creates a new StudentCourseRepository.
func NewStudentCourseRepository(db Querier) *StudentCourseRepository {
	return &StudentCourseRepository{db: db}
}

// List returns the full projection ordered by registration date.
func (r *StudentCourseRepository) List(ctx context.Context) ([]model.StudentCourse, error) {
	rows, err := r.db.Query(ctx, studentCourseQuery+` ORDER BY r.registration_date, s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudentCourses(rows)
}

// ListByStudent returns the projection rows of one student.
func (r *StudentCourseRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.StudentCourse, error) {
	rows, err := r.db.Query(ctx, studentCourseQuery+` WHERE s.id = $1 ORDER BY r.registration_date`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudentCourses(rows)
}

func scanStudentCourses(rows pgx.Rows) ([]model.StudentCourse, error) {
	var out []model.StudentCourse
	for rows.Next() {
		var sc model.StudentCourse
		if err := rows.Scan(&sc.StudentID, &sc.StudentName, &sc.CourseName, &sc.BatchName, &sc.RegistrationDate, &sc.Status); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
