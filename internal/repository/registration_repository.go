package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/edureg-backend/internal/model"
)

// RegistrationRepository handles registration data access. Status is
// derived through model.DeriveStatus on every write path, so a payment
// above the confirmation threshold always lands as Confirmed.
type RegistrationRepository struct {
	db Querier
}

// NewRegistrationRepository creates a new RegistrationRepository.
func NewRegistrationRepository(db Querier) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// WithTx returns a copy of the repository bound to an open transaction.
func (r *RegistrationRepository) WithTx(tx pgx.Tx) *RegistrationRepository {
	return &RegistrationRepository{db: tx}
}

// Create inserts a new registration and fills in the generated id,
// registration timestamp, and derived status.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	reg.Status = model.DeriveStatus(reg.PaymentAmount, reg.Status)
	err := r.db.QueryRow(ctx,
		`INSERT INTO registrations (student_id, batch_id, payment_amount, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, registration_date`,
		reg.StudentID, reg.BatchID, reg.PaymentAmount, reg.Status,
	).Scan(&reg.ID, &reg.RegistrationDate)
	return mapWriteError(err)
}

// GetByID retrieves a registration by ID.
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*model.Registration, error) {
	reg := &model.Registration{}
	err := r.db.QueryRow(ctx,
		`SELECT id, student_id, batch_id, payment_amount, registration_date, status
		 FROM registrations WHERE id = $1`, id,
	).Scan(&reg.ID, &reg.StudentID, &reg.BatchID, &reg.PaymentAmount, &reg.RegistrationDate, &reg.Status)
	if err != nil {
		return nil, mapReadError(err)
	}
	return reg, nil
}

// ListByStudent retrieves all registrations of a student, newest first.
func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, student_id, batch_id, payment_amount, registration_date, status
		 FROM registrations WHERE student_id = $1 ORDER BY registration_date DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(&reg.ID, &reg.StudentID, &reg.BatchID, &reg.PaymentAmount, &reg.RegistrationDate, &reg.Status); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// UpdateStatus sets a registration's status to the derived value for
// the requested one. Payment is immutable after insert, so reading it
// first and writing the derived status is race-free without a
// transaction.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int64, requested model.RegistrationStatus) (model.RegistrationStatus, error) {
	var payment float64
	err := r.db.QueryRow(ctx,
		`SELECT payment_amount FROM registrations WHERE id = $1`, id,
	).Scan(&payment)
	if err != nil {
		return "", mapReadError(err)
	}

	status := model.DeriveStatus(payment, requested)
	if _, err := r.db.Exec(ctx,
		`UPDATE registrations SET status = $1 WHERE id = $2`, status, id,
	); err != nil {
		return "", mapWriteError(err)
	}
	return status, nil
}

// Delete removes a registration by ID.
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
