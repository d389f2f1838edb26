package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/edureg-backend/internal/model"
)

// BatchRepository handles batch data access.
type BatchRepository struct {
	db Querier
}

// NewBatchRepository creates a new BatchRepository.
func NewBatchRepository(db Querier) *BatchRepository {
	return &BatchRepository{db: db}
}

// Create inserts a new batch and fills in the generated id.
func (r *BatchRepository) Create(ctx context.Context, b *model.Batch) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO batches (name, start_date, end_date, course_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		b.Name, b.StartDate, b.EndDate, b.CourseID,
	).Scan(&b.ID)
	return mapWriteError(err)
}

// GetByID retrieves a batch by ID.
func (r *BatchRepository) GetByID(ctx context.Context, id int64) (*model.Batch, error) {
	b := &model.Batch{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, start_date, end_date, course_id FROM batches WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.StartDate, &b.EndDate, &b.CourseID)
	if err != nil {
		return nil, mapReadError(err)
	}
	return b, nil
}

// ListByCourse retrieves all batches of a course ordered by start date.
func (r *BatchRepository) ListByCourse(ctx context.Context, courseID int64) ([]model.Batch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, start_date, end_date, course_id
		 FROM batches WHERE course_id = $1 ORDER BY start_date`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBatches(rows)
}

// List retrieves all batches ordered by start date.
func (r *BatchRepository) List(ctx context.Context) ([]model.Batch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, start_date, end_date, course_id FROM batches ORDER BY start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBatches(rows)
}

func scanBatches(rows pgx.Rows) ([]model.Batch, error) {
	var batches []model.Batch
	for rows.Next() {
		var b model.Batch
		if err := rows.Scan(&b.ID, &b.Name, &b.StartDate, &b.EndDate, &b.CourseID); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// Delete removes a batch by ID. Registrations for the batch are removed
// by cascade.
func (r *BatchRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
