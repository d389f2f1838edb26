package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/edureg-backend/internal/model"
	"github.com/stemsi/edureg-backend/internal/validator"
)

func validStudent() *model.CreateStudentRequest {
	return &model.CreateStudentRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		DateOfBirth: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestStudentRequestValid(t *testing.T) {
	assert.Nil(t, validator.Struct(validStudent()))
}

func TestStudentRequestBadEmail(t *testing.T) {
	for _, email := range []string{"plainaddress", "@nodomain.com", "john.doe", ""} {
		req := validStudent()
		req.Email = email
		fields := validator.Struct(req)
		require.NotNil(t, fields, "email %q should be rejected", email)
		assert.Contains(t, fields, "email")
	}
}

func TestStudentRequestUnderage(t *testing.T) {
	req := validStudent()
	req.DateOfBirth = time.Now().AddDate(-17, 0, 0)
	fields := validator.Struct(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "date_of_birth")
}

func TestStudentRequestExactlyEighteen(t *testing.T) {
	req := validStudent()
	req.DateOfBirth = time.Now().AddDate(-18, 0, -1)
	assert.Nil(t, validator.Struct(req))
}

func TestCourseRequestCreditsRange(t *testing.T) {
	for _, credits := range []int{-1, 0, 11} {
		req := &model.CreateCourseRequest{Name: "Databases", Code: "DB101", Credits: credits}
		fields := validator.Struct(req)
		require.NotNil(t, fields, "credits %d should be rejected", credits)
		assert.Contains(t, fields, "credits")
	}

	for _, credits := range []int{1, 5, 10} {
		req := &model.CreateCourseRequest{Name: "Databases", Code: "DB101", Credits: credits}
		assert.Nil(t, validator.Struct(req), "credits %d should be accepted", credits)
	}
}

func TestBatchRequestDateOrdering(t *testing.T) {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	req := &model.CreateBatchRequest{Name: "Fall", StartDate: start, EndDate: start, CourseID: 1}
	fields := validator.Struct(req)
	require.NotNil(t, fields, "end == start should be rejected")
	assert.Contains(t, fields, "end_date")

	req.EndDate = start.AddDate(0, -1, 0)
	fields = validator.Struct(req)
	require.NotNil(t, fields, "end < start should be rejected")
	assert.Contains(t, fields, "end_date")

	req.EndDate = start.AddDate(0, 4, 0)
	assert.Nil(t, validator.Struct(req))
}

func TestRegistrationRequestPayment(t *testing.T) {
	for _, payment := range []float64{-10, 0} {
		req := &model.CreateRegistrationRequest{StudentID: 1, BatchID: 1, PaymentAmount: payment}
		fields := validator.Struct(req)
		require.NotNil(t, fields, "payment %v should be rejected", payment)
		assert.Contains(t, fields, "payment_amount")
	}

	req := &model.CreateRegistrationRequest{StudentID: 1, BatchID: 1, PaymentAmount: 0.01}
	assert.Nil(t, validator.Struct(req))
}

func TestRegistrationRequestStatusEnum(t *testing.T) {
	req := &model.CreateRegistrationRequest{StudentID: 1, BatchID: 1, PaymentAmount: 100, Status: "Unknown"}
	fields := validator.Struct(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "status")
}
